package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partnerdesk/internal/domain"
)

func seedPartner(t *testing.T, partners *PartnerRepo) *domain.Partner {
	t.Helper()
	p, err := partners.Create(context.Background(), domain.CreatePartnerData{
		Name:  "Acme Corporation",
		Email: "contact@acme.com",
	})
	require.NoError(t, err)
	return p
}

func contractRepos(t *testing.T) (*PartnerRepo, *ContractRepo) {
	t.Helper()
	g := newPartnerGateway(t)
	return NewPartnerRepo(g), NewContractRepo(g)
}

func TestContractCreateDefaults(t *testing.T) {
	partners, contracts := contractRepos(t)
	ctx := context.Background()
	partner := seedPartner(t, partners)

	created, err := contracts.Create(ctx, domain.CreateContractData{
		PartnerID: partner.ID,
		Title:     "Annual Service Agreement",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "USD", created.Currency)
	assert.Equal(t, domain.ContractActive, created.Status)
	assert.True(t, created.IsActive)
	assert.Nil(t, created.Amount)
	assert.Nil(t, created.EndDate)
}

func TestContractCreateExplicitlyInactivePersists(t *testing.T) {
	partners, contracts := contractRepos(t)
	ctx := context.Background()
	partner := seedPartner(t, partners)

	off := false
	created, err := contracts.Create(ctx, domain.CreateContractData{
		PartnerID: partner.ID,
		Title:     "Suspended deal",
		StartDate: time.Now(),
		IsActive:  &off,
	})
	require.NoError(t, err)
	assert.False(t, created.IsActive)

	got, err := contracts.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.IsActive)
}

func TestContractCreateForMissingPartnerFails(t *testing.T) {
	_, contracts := contractRepos(t)
	ctx := context.Background()

	_, err := contracts.Create(ctx, domain.CreateContractData{
		PartnerID: 999,
		Title:     "Orphan",
		StartDate: time.Now(),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContractFindByPartnerAndStatus(t *testing.T) {
	partners, contracts := contractRepos(t)
	ctx := context.Background()
	partner := seedPartner(t, partners)

	expired := domain.ContractExpired
	_, err := contracts.Create(ctx, domain.CreateContractData{
		PartnerID: partner.ID, Title: "Old deal", StartDate: time.Now(), Status: &expired,
	})
	require.NoError(t, err)
	_, err = contracts.Create(ctx, domain.CreateContractData{
		PartnerID: partner.ID, Title: "Current deal", StartDate: time.Now(),
	})
	require.NoError(t, err)

	byPartner, err := contracts.FindByPartnerID(ctx, partner.ID)
	require.NoError(t, err)
	assert.Len(t, byPartner, 2)

	active, err := contracts.FindByStatus(ctx, domain.ContractActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Current deal", active[0].Title)
}

func TestContractsSurvivePartnerSoftDelete(t *testing.T) {
	partners, contracts := contractRepos(t)
	ctx := context.Background()
	partner := seedPartner(t, partners)

	created, err := contracts.Create(ctx, domain.CreateContractData{
		PartnerID: partner.ID, Title: "Deal", StartDate: time.Now(),
	})
	require.NoError(t, err)

	_, err = partners.SoftDelete(ctx, partner.ID)
	require.NoError(t, err)

	got, err := contracts.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	byPartner, err := contracts.FindByPartnerID(ctx, partner.ID)
	require.NoError(t, err)
	assert.Len(t, byPartner, 1)
}

func TestContractUpdateTriState(t *testing.T) {
	partners, contracts := contractRepos(t)
	ctx := context.Background()
	partner := seedPartner(t, partners)

	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	created, err := contracts.Create(ctx, domain.CreateContractData{
		PartnerID: partner.ID, Title: "Deal", StartDate: time.Now(), EndDate: &end,
	})
	require.NoError(t, err)

	amount := domain.Set(4200.0)
	updated, err := contracts.Update(ctx, created.ID, domain.UpdateContractData{Amount: amount})
	require.NoError(t, err)
	require.NotNil(t, updated.Amount)
	assert.Equal(t, 4200.0, *updated.Amount)
	require.NotNil(t, updated.EndDate)

	// Explicit null clears the end date; everything else stays.
	updated, err = contracts.Update(ctx, created.ID, domain.UpdateContractData{EndDate: domain.Null[time.Time]()})
	require.NoError(t, err)
	assert.Nil(t, updated.EndDate)
	require.NotNil(t, updated.Amount)
	assert.Equal(t, 4200.0, *updated.Amount)
}

func TestContractDeleteIsHard(t *testing.T) {
	partners, contracts := contractRepos(t)
	ctx := context.Background()
	partner := seedPartner(t, partners)

	created, err := contracts.Create(ctx, domain.CreateContractData{
		PartnerID: partner.ID, Title: "Deal", StartDate: time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, contracts.Delete(ctx, created.ID))
	require.ErrorIs(t, contracts.Delete(ctx, created.ID), domain.ErrNotFound)

	got, err := contracts.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestContractStatusTransition(t *testing.T) {
	partners, contracts := contractRepos(t)
	ctx := context.Background()
	partner := seedPartner(t, partners)

	created, err := contracts.Create(ctx, domain.CreateContractData{
		PartnerID: partner.ID, Title: "Deal", StartDate: time.Now(),
	})
	require.NoError(t, err)

	cancelled := domain.ContractCancelled
	updated, err := contracts.Update(ctx, created.ID, domain.UpdateContractData{Status: &cancelled})
	require.NoError(t, err)
	assert.Equal(t, domain.ContractCancelled, updated.Status)
}
