package repository_test

import (
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/sonuudigital/microservices/catalog-service/internal/repository"
	"github.com/stretchr/testify/require"
)

var productColumns = []string{"product_no", "title", "price", "text", "imgurl", "category", "date"}

func newQueries(t *testing.T) (*repository.Queries, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return repository.New(mock), mock
}

func strPtr(s string) *string {
	return &s
}
