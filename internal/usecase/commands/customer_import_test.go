//go:build unit

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCustomerRows(t *testing.T) {
	t.Run("maps the full column set by header label", func(t *testing.T) {
		rows := [][]string{
			{"ID", "Name", "Email", "Phone", "National ID", "Warnings"},
			{"CAI-07", "Omar", "omar@example.com", "0100000001", "29805053344556", "2"},
			{"CAI-08", "Sara", "", "0100000002", "", ""},
		}

		customers, skipped := parseCustomerRows(rows)
		require.Len(t, customers, 2)
		assert.Zero(t, skipped)

		assert.Equal(t, "Omar", customers[0].Name)
		require.NotNil(t, customers[0].Email)
		assert.Equal(t, "omar@example.com", *customers[0].Email)
		require.NotNil(t, customers[0].NationalID)
		assert.Equal(t, "29805053344556", *customers[0].NationalID)
		assert.Equal(t, int32(2), customers[0].Warnings)

		assert.Equal(t, "Sara", customers[1].Name)
		assert.Nil(t, customers[1].Email)
		assert.Nil(t, customers[1].NationalID)
		assert.Zero(t, customers[1].Warnings)
	})

	t.Run("column order in the file does not matter", func(t *testing.T) {
		rows := [][]string{
			{"Warnings", "Phone", "Name"},
			{"1", "0100000003", "Nour"},
		}

		customers, skipped := parseCustomerRows(rows)
		require.Len(t, customers, 1)
		assert.Zero(t, skipped)
		assert.Equal(t, "Nour", customers[0].Name)
		require.NotNil(t, customers[0].Phone)
		assert.Equal(t, "0100000003", *customers[0].Phone)
		assert.Equal(t, int32(1), customers[0].Warnings)
	})

	t.Run("rows without a name are skipped", func(t *testing.T) {
		rows := [][]string{
			{"Name", "Phone"},
			{"", "0100000004"},
			{"Laila", "0100000005"},
			{"   ", ""},
		}

		customers, skipped := parseCustomerRows(rows)
		require.Len(t, customers, 1)
		assert.Equal(t, 2, skipped)
		assert.Equal(t, "Laila", customers[0].Name)
	})

	t.Run("non-numeric warnings count as zero", func(t *testing.T) {
		rows := [][]string{
			{"Name", "Warnings"},
			{"Hassan", "many"},
		}

		customers, _ := parseCustomerRows(rows)
		require.Len(t, customers, 1)
		assert.Zero(t, customers[0].Warnings)
	})

	t.Run("header only yields nothing", func(t *testing.T) {
		customers, skipped := parseCustomerRows([][]string{{"Name"}})
		assert.Empty(t, customers)
		assert.Zero(t, skipped)
	})
}
