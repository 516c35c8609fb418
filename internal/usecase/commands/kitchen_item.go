package commands

import (
	"context"
	"io"
	"strconv"
	"strings"

	"comma-backend/internal/infra/db"
	"comma-backend/internal/pkg/errs"
	"comma-backend/internal/usecase/queries"
	"comma-backend/internal/usecase/shared"

	"github.com/xuri/excelize/v2"
)

type NewKitchenItem struct {
	Name         string
	Price        float64
	Category     string
	Availability string
}

type ImportKitchenItemsResult struct {
	Imported int
	Skipped  int
}

type KitchenItemWriteRepository interface {
	Insert(ctx context.Context, dbtx db.DBTX, item NewKitchenItem) (int64, error)
	Update(ctx context.Context, dbtx db.DBTX, id int64, item NewKitchenItem) (int64, error)
	Delete(ctx context.Context, dbtx db.DBTX, id int64) (int64, error)
}

type KitchenItemCommands interface {
	Create(ctx context.Context, item NewKitchenItem) (*queries.KitchenItemView, error)
	Update(ctx context.Context, id int64, item NewKitchenItem) (*queries.KitchenItemView, error)
	Delete(ctx context.Context, id int64) error
	ImportExcel(ctx context.Context, file io.Reader) (*ImportKitchenItemsResult, error)
}

type kitchenItemUseCaseImpl struct {
	uow         shared.UnitOfWork
	itemRepo    KitchenItemWriteRepository
	itemQueries queries.KitchenItemQueries
}

func NewKitchenItemUseCase(
	uow shared.UnitOfWork,
	itemRepo KitchenItemWriteRepository,
	itemQueries queries.KitchenItemQueries,
) KitchenItemCommands {
	return &kitchenItemUseCaseImpl{
		uow:         uow,
		itemRepo:    itemRepo,
		itemQueries: itemQueries,
	}
}

func (k *kitchenItemUseCaseImpl) Create(ctx context.Context, item NewKitchenItem) (*queries.KitchenItemView, error) {
	if item.Price < 0 {
		return nil, errs.Mark(errs.New("price must not be negative"), errs.ErrDomainValidation)
	}

	var itemID int64
	err := k.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		id, err := k.itemRepo.Insert(ctx, dbtx, item)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		itemID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return k.itemQueries.GetByID(ctx, itemID)
}

func (k *kitchenItemUseCaseImpl) Update(ctx context.Context, id int64, item NewKitchenItem) (*queries.KitchenItemView, error) {
	if item.Price < 0 {
		return nil, errs.Mark(errs.New("price must not be negative"), errs.ErrDomainValidation)
	}

	err := k.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		affected, err := k.itemRepo.Update(ctx, dbtx, id, item)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return errs.ErrKitchenItemNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return k.itemQueries.GetByID(ctx, id)
}

func (k *kitchenItemUseCaseImpl) Delete(ctx context.Context, id int64) error {
	return k.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		affected, err := k.itemRepo.Delete(ctx, dbtx, id)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return errs.ErrKitchenItemNotFound
		}
		return nil
	})
}

// ImportExcel bulk-loads menu items from the first sheet. Expected columns
// are name, price, category, availability; rows without a name or with an
// unparsable price are skipped.
func (k *kitchenItemUseCaseImpl) ImportExcel(ctx context.Context, file io.Reader) (*ImportKitchenItemsResult, error) {
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

	var result ImportKitchenItemsResult
	err = k.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		result = ImportKitchenItemsResult{}
		for _, row := range rows[1:] {
			name := cell(row, 0)
			price, priceErr := strconv.ParseFloat(cell(row, 1), 64)
			if name == "" || priceErr != nil || price < 0 {
				result.Skipped++
				continue
			}

			availability := cell(row, 3)
			if availability == "" {
				availability = "available"
			}
			item := NewKitchenItem{
				Name:         name,
				Price:        price,
				Category:     cell(row, 2),
				Availability: availability,
			}
			if _, err := k.itemRepo.Insert(ctx, dbtx, item); err != nil {
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

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
