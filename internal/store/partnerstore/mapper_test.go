package partnerstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partnerdesk/internal/domain"
)

func strptr(s string) *string { return &s }

func TestPartnerPatchFromUpdateFieldStates(t *testing.T) {
	// Absent Field members contribute nothing to the patch.
	assert.Empty(t, PartnerPatchFromUpdate(domain.UpdatePartnerData{}))

	// Explicit null clears the column.
	p := PartnerPatchFromUpdate(domain.UpdatePartnerData{Phone: domain.Null[string]()})
	require.Len(t, p, 1)
	v, ok := p["phone"]
	require.True(t, ok)
	assert.Nil(t, v)

	// Set writes the value.
	p = PartnerPatchFromUpdate(domain.UpdatePartnerData{
		Name:    strptr("Acme Corp"),
		Website: domain.Set("https://acme.example"),
	})
	assert.Len(t, p, 2)
	assert.Equal(t, "Acme Corp", p["name"])
	assert.Equal(t, "https://acme.example", p["website"])
}

func TestContractRecordFromCreateDefaults(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := ContractRecordFromCreate(domain.CreateContractData{
		PartnerID: 1,
		Title:     "Annual Service Agreement",
		StartDate: start,
	})
	assert.Equal(t, "USD", rec.Currency)
	assert.Equal(t, "active", rec.Status)
	assert.True(t, rec.IsActive)
	assert.Nil(t, rec.Amount)
	assert.Nil(t, rec.EndDate)

	eur := "EUR"
	expired := domain.ContractExpired
	amount := 5000.0
	rec = ContractRecordFromCreate(domain.CreateContractData{
		PartnerID: 1,
		Title:     "Closed deal",
		StartDate: start,
		Currency:  &eur,
		Status:    &expired,
		Amount:    &amount,
	})
	assert.Equal(t, "EUR", rec.Currency)
	assert.Equal(t, "expired", rec.Status)
	require.NotNil(t, rec.Amount)
	assert.Equal(t, 5000.0, *rec.Amount)
}

func TestContractPatchFromUpdateFieldStates(t *testing.T) {
	assert.Empty(t, ContractPatchFromUpdate(domain.UpdateContractData{}))

	p := ContractPatchFromUpdate(domain.UpdateContractData{
		Amount:  domain.Set(1200.50),
		EndDate: domain.Null[time.Time](),
	})
	require.Len(t, p, 2)
	assert.Equal(t, 1200.50, p["amount"])
	v, ok := p["end_date"]
	require.True(t, ok)
	assert.Nil(t, v)
}

func TestContractToDomainCopiesAmount(t *testing.T) {
	amount := 99.90
	rec := &ContractRecord{ID: 2, PartnerID: 1, Title: "T", Amount: &amount, Currency: "USD", Status: "active"}
	c := ContractToDomain(rec)
	require.NotNil(t, c.Amount)
	assert.Equal(t, amount, *c.Amount)
	// The domain copy must not alias the record's pointer.
	*rec.Amount = 0
	assert.Equal(t, 99.90, *c.Amount)
}

func TestPartnerToDomainKeepsNullables(t *testing.T) {
	rec := &PartnerRecord{ID: 1, Name: "Acme", Email: "acme@example.com", IsActive: true}
	p := PartnerToDomain(rec)
	assert.Nil(t, p.Phone)
	assert.Nil(t, p.Website)
	assert.Nil(t, p.Address)
}
