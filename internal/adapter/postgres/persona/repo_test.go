package persona_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"

	"github.com/sima-app/sima-backend/internal/adapter/postgres/persona"
	"github.com/sima-app/sima-backend/internal/adapter/postgres/testhelper"
	"github.com/sima-app/sima-backend/internal/domain"
)

// newRepo is a test helper that sets up the DB and returns a ready Repo.
func newRepo(t *testing.T) *persona.Repo {
	t.Helper()
	return persona.New(testhelper.SetupTestDB(t))
}

// dniSeq hands out distinct document numbers so parallel tests never trip
// over the live-rows unique index.
var dniSeq atomic.Int64

func nextDNI() string {
	return fmt.Sprintf("1%08d", dniSeq.Add(1))
}

func seedPersona(t *testing.T, repo *persona.Repo, row map[string]any) int64 {
	t.Helper()

	if _, ok := row["dni"]; !ok {
		row["dni"] = nextDNI()
	}
	if _, ok := row["fotos_adicionales"]; !ok {
		row["fotos_adicionales"] = []string{}
	}

	id, err := repo.Create(context.Background(), row, nil)
	if err != nil {
		t.Fatalf("seed persona: %v", err)
	}
	return id
}

// ---------------------------------------------------------------------------
// CRUD
// ---------------------------------------------------------------------------

func TestRepo_Create_HappyPath(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	dni := nextDNI()
	id, err := repo.Create(ctx, map[string]any{
		"nombre":            "Juan",
		"apellido":          "Pérez",
		"dni":               dni,
		"nacionalidad":      "Argentina",
		"fotos_adicionales": []string{"/uploads/a.jpg", "/uploads/b.jpg"},
	}, nil)
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}

	if got.Nombre != "Juan" {
		t.Errorf("Nombre mismatch: got %q, want %q", got.Nombre, "Juan")
	}
	if got.DNI != dni {
		t.Errorf("DNI mismatch: got %q, want %q", got.DNI, dni)
	}
	if got.Nacionalidad == nil || *got.Nacionalidad != "Argentina" {
		t.Errorf("Nacionalidad mismatch: got %v", got.Nacionalidad)
	}
	if len(got.FotosAdicionales) != 2 {
		t.Errorf("FotosAdicionales mismatch: got %v", got.FotosAdicionales)
	}
	if got.DeletedAt != nil {
		t.Errorf("DeletedAt should be nil on a fresh row, got %v", got.DeletedAt)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("expected non-zero timestamps")
	}
}

func TestRepo_Create_DuplicateDNI(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	dni := nextDNI()
	seedPersona(t, repo, map[string]any{"nombre": "Ana", "apellido": "Gómez", "dni": dni})

	_, err := repo.Create(ctx, map[string]any{
		"nombre":            "Otra",
		"apellido":          "Persona",
		"dni":               dni,
		"fotos_adicionales": []string{},
	}, nil)
	assertIsDomainError(t, err, domain.ErrConflict)
}

func TestRepo_Create_DNIReusableAfterSoftDelete(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	dni := nextDNI()
	id := seedPersona(t, repo, map[string]any{"nombre": "Ana", "apellido": "Gómez", "dni": dni})

	ok, err := repo.SoftDelete(ctx, id, nil)
	if err != nil || !ok {
		t.Fatalf("SoftDelete: ok=%v err=%v", ok, err)
	}

	// The partial unique index only covers live rows, so the DNI is free again.
	if _, err := repo.Create(ctx, map[string]any{
		"nombre":            "Ana",
		"apellido":          "Gómez",
		"dni":               dni,
		"fotos_adicionales": []string{},
	}, nil); err != nil {
		t.Fatalf("Create after soft delete: unexpected error: %v", err)
	}
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)

	_, err := repo.GetByID(context.Background(), 999_999_999)
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_SoftDelete_HidesRow(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	id := seedPersona(t, repo, map[string]any{"nombre": "Oculta", "apellido": "Borrada"})

	ok, err := repo.SoftDelete(ctx, id, nil)
	if err != nil || !ok {
		t.Fatalf("SoftDelete: ok=%v err=%v", ok, err)
	}

	_, err = repo.GetByID(ctx, id)
	assertIsDomainError(t, err, domain.ErrNotFound)

	// GetAnyByID keeps soft-deleted rows reachable for history views.
	got, err := repo.GetAnyByID(ctx, id)
	if err != nil {
		t.Fatalf("GetAnyByID: unexpected error: %v", err)
	}
	if got.DeletedAt == nil {
		t.Error("expected DeletedAt to be set")
	}

	// A second delete finds no live row.
	ok, err = repo.SoftDelete(ctx, id, nil)
	if err != nil {
		t.Fatalf("SoftDelete twice: %v", err)
	}
	if ok {
		t.Error("second SoftDelete should report no row affected")
	}
}

func TestRepo_Update_SkipsDeletedRows(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	id := seedPersona(t, repo, map[string]any{"nombre": "Vieja", "apellido": "Versión"})

	ok, err := repo.Update(ctx, id, map[string]any{"apellido": "Nueva"}, nil)
	if err != nil || !ok {
		t.Fatalf("Update: ok=%v err=%v", ok, err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Apellido != "Nueva" {
		t.Errorf("Apellido mismatch: got %q, want %q", got.Apellido, "Nueva")
	}

	if _, err := repo.SoftDelete(ctx, id, nil); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	ok, err = repo.Update(ctx, id, map[string]any{"apellido": "Fantasma"}, nil)
	if err != nil {
		t.Fatalf("Update deleted row: %v", err)
	}
	if ok {
		t.Error("Update should not touch soft-deleted rows")
	}
}

// ---------------------------------------------------------------------------
// FindByDNI
// ---------------------------------------------------------------------------

func TestRepo_FindByDNI(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	dni := nextDNI()
	id := seedPersona(t, repo, map[string]any{"nombre": "Carla", "apellido": "Duarte", "dni": dni})

	got, err := repo.FindByDNI(ctx, dni, 0)
	if err != nil {
		t.Fatalf("FindByDNI: unexpected error: %v", err)
	}
	if got.ID != id {
		t.Errorf("ID mismatch: got %d, want %d", got.ID, id)
	}

	// Excluding the row itself reports the DNI as free, which is how update
	// duplicate checks ignore the row being edited.
	_, err = repo.FindByDNI(ctx, dni, id)
	assertIsDomainError(t, err, domain.ErrNotFound)

	_, err = repo.FindByDNI(ctx, nextDNI(), 0)
	assertIsDomainError(t, err, domain.ErrNotFound)
}

// ---------------------------------------------------------------------------
// Search
// ---------------------------------------------------------------------------

func TestRepo_SearchPage_ByComisaria(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	marker := "Comisaría " + uuid.New().String()[:8]
	seedPersona(t, repo, map[string]any{"nombre": "Zoe", "apellido": "Zárate", "comisaria": marker})
	seedPersona(t, repo, map[string]any{"nombre": "Abel", "apellido": "Acosta", "comisaria": marker})
	seedPersona(t, repo, map[string]any{"nombre": "Mora", "apellido": "Medina", "comisaria": marker})

	// Unrelated row that must not match.
	seedPersona(t, repo, map[string]any{"nombre": "Otro", "apellido": "Barrio"})

	page, err := repo.SearchPage(ctx, domain.PersonaFilter{Comisaria: marker}, domain.ListOptions{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("SearchPage: unexpected error: %v", err)
	}

	if page.Total != 3 {
		t.Fatalf("Total mismatch: got %d, want 3", page.Total)
	}
	if len(page.Items) != 3 {
		t.Fatalf("Items mismatch: got %d, want 3", len(page.Items))
	}

	// Ordered by apellido ascending.
	wantOrder := []string{"Acosta", "Medina", "Zárate"}
	for i, want := range wantOrder {
		if page.Items[i].Apellido != want {
			t.Errorf("item %d: got apellido %q, want %q", i, page.Items[i].Apellido, want)
		}
	}
}

func TestRepo_SearchPage_UnpaginatedReturnsFullSet(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	marker := "Comisaría " + uuid.New().String()[:8]
	for i := 0; i < 3; i++ {
		seedPersona(t, repo, map[string]any{
			"nombre":    "Vecina",
			"apellido":  fmt.Sprintf("Completa%d", i),
			"comisaria": marker,
		})
	}

	// No page/pageSize means every matching row comes back in one page.
	page, err := repo.SearchPage(ctx, domain.PersonaFilter{Comisaria: marker}, domain.ListOptions{})
	if err != nil {
		t.Fatalf("SearchPage: unexpected error: %v", err)
	}
	if page.Total != 3 || len(page.Items) != 3 {
		t.Fatalf("expected full set of 3, got total=%d items=%d", page.Total, len(page.Items))
	}
	if page.Page != 1 || page.PageSize != 3 {
		t.Errorf("page descriptor mismatch: got page=%d pageSize=%d", page.Page, page.PageSize)
	}
}

func TestRepo_SearchPage_FreeText(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	marker := "Apellido" + uuid.New().String()[:8]
	seedPersona(t, repo, map[string]any{"nombre": "Laura", "apellido": marker})

	// Case-insensitive contains over nombre, apellido and dni.
	page, err := repo.SearchPage(ctx, domain.PersonaFilter{Q: marker[:12]}, domain.ListOptions{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("SearchPage: unexpected error: %v", err)
	}
	if page.Total != 1 {
		t.Fatalf("Total mismatch: got %d, want 1", page.Total)
	}
	if page.Items[0].Apellido != marker {
		t.Errorf("Apellido mismatch: got %q, want %q", page.Items[0].Apellido, marker)
	}
}

func TestRepo_SearchPage_ExcludesDeleted(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	marker := "Comisaría " + uuid.New().String()[:8]
	keep := seedPersona(t, repo, map[string]any{"nombre": "Viva", "apellido": "Queda", "comisaria": marker})
	gone := seedPersona(t, repo, map[string]any{"nombre": "Borrada", "apellido": "Sale", "comisaria": marker})

	if _, err := repo.SoftDelete(ctx, gone, nil); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	page, err := repo.SearchPage(ctx, domain.PersonaFilter{Comisaria: marker}, domain.ListOptions{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("SearchPage: unexpected error: %v", err)
	}
	if page.Total != 1 || len(page.Items) != 1 {
		t.Fatalf("expected exactly one live row, got total=%d items=%d", page.Total, len(page.Items))
	}
	if page.Items[0].ID != keep {
		t.Errorf("ID mismatch: got %d, want %d", page.Items[0].ID, keep)
	}
}

func TestRepo_SearchAll_Limit(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	marker := "Comisaría " + uuid.New().String()[:8]
	for i := 0; i < 3; i++ {
		seedPersona(t, repo, map[string]any{"nombre": "Fila", "apellido": fmt.Sprintf("Export%d", i), "comisaria": marker})
	}

	items, err := repo.SearchAll(ctx, domain.PersonaFilter{Comisaria: marker}, 2)
	if err != nil {
		t.Fatalf("SearchAll: unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected the limit to cap the result, got %d rows", len(items))
	}
}

// ---------------------------------------------------------------------------
// Statistics
// ---------------------------------------------------------------------------

func TestRepo_Statistics(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	marker := "Comisaría " + uuid.New().String()[:8]
	seedPersona(t, repo, map[string]any{"nombre": "Nueva", "apellido": "Alta", "comisaria": marker})

	stats, err := repo.Statistics(ctx)
	if err != nil {
		t.Fatalf("Statistics: unexpected error: %v", err)
	}

	if stats.TotalPersonas < 1 {
		t.Errorf("TotalPersonas should count the seeded row, got %d", stats.TotalPersonas)
	}
	if stats.Ultimos30Dias < 1 {
		t.Errorf("Ultimos30Dias should count the fresh row, got %d", stats.Ultimos30Dias)
	}

	found := false
	for _, bucket := range stats.PorComisaria {
		if bucket.Comisaria != nil && *bucket.Comisaria == marker {
			found = true
			if bucket.Count != 1 {
				t.Errorf("bucket %q count mismatch: got %d, want 1", marker, bucket.Count)
			}
		}
	}
	if !found {
		t.Errorf("expected a PorComisaria bucket for %q", marker)
	}
}

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

func assertIsDomainError(t *testing.T, err error, target error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error wrapping %v, got nil", target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("expected error wrapping %v, got: %v", target, err)
	}
}
