package seed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/acme-dashboard/internal/auth"
	"github.com/mmynk/acme-dashboard/internal/storage/sqlite"
)

func TestRunIsIdempotent(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	defer store.Close()

	authn := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)
	ctx := context.Background()

	first, err := Run(ctx, store, authn)
	require.NoError(t, err)
	assert.Equal(t, Summary{Customers: len(customers), Invoices: len(invoices), Users: 1}, first)

	second, err := Run(ctx, store, authn)
	require.NoError(t, err)
	assert.Equal(t, Summary{}, second)

	cards, err := store.CardData(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(customers)), cards.NumberOfCustomers)
	assert.Equal(t, int64(len(invoices)), cards.NumberOfInvoices)

	user, err := authn.Authenticate(ctx, DefaultUser.Email, DefaultUser.Password)
	require.NoError(t, err)
	assert.Equal(t, DefaultUser.Name, user.Name)
}
