package partnerstore

import (
	"partnerdesk/internal/domain"
	"partnerdesk/internal/store"
)

// Pure translators for the partners context. Same sparse-patch contract as
// the users side; Field-typed payload members can additionally clear a
// nullable column with an explicit null.

func PartnerToDomain(rec *PartnerRecord) *domain.Partner {
	return &domain.Partner{
		ID:        rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		Phone:     rec.Phone,
		Website:   rec.Website,
		Address:   rec.Address,
		IsActive:  rec.IsActive,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func PartnersToDomain(recs []PartnerRecord) []domain.Partner {
	out := make([]domain.Partner, 0, len(recs))
	for i := range recs {
		out = append(out, *PartnerToDomain(&recs[i]))
	}
	return out
}

func PartnerRecordFromCreate(d domain.CreatePartnerData) *PartnerRecord {
	rec := &PartnerRecord{
		Name:     d.Name,
		Email:    d.Email,
		Phone:    d.Phone,
		Website:  d.Website,
		Address:  d.Address,
		IsActive: true,
	}
	if d.IsActive != nil {
		rec.IsActive = *d.IsActive
	}
	return rec
}

func PartnerPatchFromUpdate(d domain.UpdatePartnerData) store.Patch {
	p := store.Patch{}
	if d.Name != nil {
		p["name"] = *d.Name
	}
	if d.Email != nil {
		p["email"] = *d.Email
	}
	putField(p, "phone", d.Phone)
	putField(p, "website", d.Website)
	putField(p, "address", d.Address)
	if d.IsActive != nil {
		p["is_active"] = *d.IsActive
	}
	return p
}

func ContractToDomain(rec *ContractRecord) *domain.Contract {
	c := &domain.Contract{
		ID:          rec.ID,
		PartnerID:   rec.PartnerID,
		Title:       rec.Title,
		Description: rec.Description,
		Currency:    rec.Currency,
		StartDate:   rec.StartDate,
		EndDate:     rec.EndDate,
		Status:      domain.ContractStatus(rec.Status),
		IsActive:    rec.IsActive,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
	// Absent amount stays absent; it must not collapse to zero.
	if rec.Amount != nil {
		v := *rec.Amount
		c.Amount = &v
	}
	return c
}

func ContractsToDomain(recs []ContractRecord) []domain.Contract {
	out := make([]domain.Contract, 0, len(recs))
	for i := range recs {
		out = append(out, *ContractToDomain(&recs[i]))
	}
	return out
}

func ContractRecordFromCreate(d domain.CreateContractData) *ContractRecord {
	rec := &ContractRecord{
		PartnerID:   d.PartnerID,
		Title:       d.Title,
		Description: d.Description,
		Amount:      d.Amount,
		Currency:    "USD",
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		Status:      string(domain.ContractActive),
		IsActive:    true,
	}
	if d.Currency != nil {
		rec.Currency = *d.Currency
	}
	if d.Status != nil {
		rec.Status = string(*d.Status)
	}
	if d.IsActive != nil {
		rec.IsActive = *d.IsActive
	}
	return rec
}

func ContractPatchFromUpdate(d domain.UpdateContractData) store.Patch {
	p := store.Patch{}
	if d.Title != nil {
		p["title"] = *d.Title
	}
	putField(p, "description", d.Description)
	putField(p, "amount", d.Amount)
	if d.Currency != nil {
		p["currency"] = *d.Currency
	}
	if d.StartDate != nil {
		p["start_date"] = *d.StartDate
	}
	putField(p, "end_date", d.EndDate)
	if d.Status != nil {
		p["status"] = string(*d.Status)
	}
	if d.IsActive != nil {
		p["is_active"] = *d.IsActive
	}
	return p
}

func putField[T any](p store.Patch, col string, f domain.Field[T]) {
	if !f.Present() {
		return
	}
	if f.IsNull() {
		p[col] = nil
		return
	}
	p[col] = f.Value()
}
