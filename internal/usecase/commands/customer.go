package commands

import (
	"context"
	"io"
	"strconv"
	"strings"

	"comma-backend/internal/domain/customer"
	"comma-backend/internal/infra"
	"comma-backend/internal/pkg/errs"
	"comma-backend/internal/usecase/queries"
	"comma-backend/internal/usecase/shared"

	"github.com/xuri/excelize/v2"
)

var ErrEmptyImportFile = errs.New("import file has no data rows")

type CreateCustomerInput struct {
	Name       string
	Email      *string
	Phone      *string
	NationalID *string
	Branch     string
}

type UpdateCustomerInput struct {
	ID         string
	Name       string
	Email      *string
	Phone      *string
	NationalID *string
	Warnings   int32
	IsActive   bool
}

type ImportCustomersResult struct {
	Imported int
	Skipped  int
}

type CustomerCommands interface {
	Create(ctx context.Context, input CreateCustomerInput) (*queries.CustomerView, error)
	Update(ctx context.Context, input UpdateCustomerInput) (*queries.CustomerView, error)
	Delete(ctx context.Context, id string) error
	ImportExcel(ctx context.Context, branch string, file io.Reader) (*ImportCustomersResult, error)
}

type customerUseCaseImpl struct {
	uow             shared.UnitOfWork
	customerQueries queries.CustomerQueries
}

func NewCustomerUseCase(
	uow shared.UnitOfWork,
	customerQueries queries.CustomerQueries,
) CustomerCommands {
	return &customerUseCaseImpl{
		uow:             uow,
		customerQueries: customerQueries,
	}
}

// Create registers a customer under a branch-prefixed sequential code. The
// code lookup and insert run in one transaction; a concurrent insert of the
// same code trips the primary key and the unit of work retries.
func (c *customerUseCaseImpl) Create(ctx context.Context, input CreateCustomerInput) (*queries.CustomerView, error) {
	prefix, err := customer.Prefix(input.Branch)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var customerID string
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lastCode, err := tx.Reads().LastCustomerCode(ctx, prefix)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		code, err := customer.NextCode(prefix, lastCode)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		record := shared.NewCustomer{
			ID:         code.String(),
			Name:       input.Name,
			Email:      input.Email,
			Phone:      input.Phone,
			NationalID: input.NationalID,
			IsActive:   true,
		}
		if err := tx.Customers().Insert(ctx, tx.DB(), record); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		customerID = code.String()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.customerQueries.GetByID(ctx, customerID)
}

func (c *customerUseCaseImpl) Update(ctx context.Context, input UpdateCustomerInput) (*queries.CustomerView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		record := shared.NewCustomer{
			ID:         input.ID,
			Name:       input.Name,
			Email:      input.Email,
			Phone:      input.Phone,
			NationalID: input.NationalID,
			Warnings:   input.Warnings,
			IsActive:   input.IsActive,
		}
		affected, err := tx.Customers().Update(ctx, tx.DB(), record)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return errs.ErrCustomerNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.customerQueries.GetByID(ctx, input.ID)
}

// Delete removes a customer along with their session history, kitchen sales
// and any active index rows, all in one transaction.
func (c *customerUseCaseImpl) Delete(ctx context.Context, id string) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.ActiveIndex().DeleteAllForCustomer(ctx, tx.DB(), id); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Bookings().DeleteByCustomer(ctx, tx.DB(), id); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Checkins().DeleteByCustomer(ctx, tx.DB(), id); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.KitchenSales().DeleteByCustomer(ctx, tx.DB(), id); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		affected, err := tx.Customers().Delete(ctx, tx.DB(), id)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return errs.ErrCustomerNotFound
		}
		return nil
	})
}

// ImportExcel bulk-registers customers from the first sheet of a spreadsheet.
// Columns are matched by header label (Name, Email, Phone, National ID,
// Warnings); rows without a name are skipped. Any ID column in the file is
// ignored, codes are assigned sequentially in file order.
func (c *customerUseCaseImpl) ImportExcel(ctx context.Context, branch string, file io.Reader) (*ImportCustomersResult, error) {
	prefix, err := customer.Prefix(branch)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, errs.Wrap(err, "failed to open spreadsheet")
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyImportFile
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errs.Wrap(err, "failed to read spreadsheet rows")
	}
	if len(rows) <= 1 {
		return nil, ErrEmptyImportFile
	}

	imported, skipped := parseCustomerRows(rows)

	var result ImportCustomersResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lastCode, err := tx.Reads().LastCustomerCode(ctx, prefix)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result = ImportCustomersResult{Skipped: skipped}
		for _, row := range imported {
			code, err := customer.NextCode(prefix, lastCode)
			if err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
			lastCode = code.String()

			record := shared.NewCustomer{
				ID:         code.String(),
				Name:       row.Name,
				Email:      row.Email,
				Phone:      row.Phone,
				NationalID: row.NationalID,
				Warnings:   row.Warnings,
				IsActive:   true,
			}
			if err := tx.Customers().Insert(ctx, tx.DB(), record); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			result.Imported++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

type importedCustomer struct {
	Name       string
	Email      *string
	Phone      *string
	NationalID *string
	Warnings   int32
}

// parseCustomerRows maps spreadsheet rows by their header labels, so column
// order in the file does not matter. Rows without a name are skipped, and a
// non-numeric warnings cell counts as zero.
func parseCustomerRows(rows [][]string) ([]importedCustomer, int) {
	if len(rows) <= 1 {
		return nil, 0
	}

	col := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	pick := func(row []string, header string) string {
		i, ok := col[header]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	optional := func(row []string, header string) *string {
		v := pick(row, header)
		if v == "" {
			return nil
		}
		return &v
	}

	var (
		customers []importedCustomer
		skipped   int
	)
	for _, row := range rows[1:] {
		name := pick(row, "name")
		if name == "" {
			skipped++
			continue
		}

		var warnings int32
		if v := pick(row, "warnings"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				warnings = int32(n)
			}
		}

		customers = append(customers, importedCustomer{
			Name:       name,
			Email:      optional(row, "email"),
			Phone:      optional(row, "phone"),
			NationalID: optional(row, "national id"),
			Warnings:   warnings,
		})
	}
	return customers, skipped
}
