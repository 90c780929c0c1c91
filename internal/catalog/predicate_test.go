// internal/catalog/predicate_test.go
package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/openmall/catalog-backend/internal/models"
)

func TestBuildPredicateEmptyFilterAdmitsAll(t *testing.T) {
	records := []models.Product{
		testProduct("a", 10),
		testProduct("b", 20),
	}

	matched := ApplyPredicate(records, BuildPredicate(Filter{}))
	assert.Len(t, matched, 2)
}

func TestBuildPredicateSearchMatchesNameAndBrand(t *testing.T) {
	byName := testProduct("Vitamin C 1000mg", 100)
	byBrand := testProduct("Daily Supplement", 100)
	byBrand.Brand = "VitaCorp"
	neither := testProduct("Blood Pressure Monitor", 100)

	pred := BuildPredicate(Filter{Search: "vita"})

	assert.True(t, pred(&byName))
	assert.True(t, pred(&byBrand))
	assert.False(t, pred(&neither))
}

func TestBuildPredicateSearchIsCaseInsensitiveAndTrimmed(t *testing.T) {
	p := testProduct("Omega-3 Fish Oil", 100)

	assert.True(t, BuildPredicate(Filter{Search: "  OMEGA  "})(&p))
	assert.True(t, BuildPredicate(Filter{Search: "fish oil"})(&p))
}

func TestBuildPredicateSearchEmptyBrandNeverMatches(t *testing.T) {
	p := testProduct("Thermometer", 100)
	p.Brand = ""

	assert.False(t, BuildPredicate(Filter{Search: "acme"})(&p))
}

func TestBuildPredicateCategory(t *testing.T) {
	in := testProduct("Bandages", 100)
	in.Categories = []string{"first-aid", "home"}
	out := testProduct("Syrup", 100)
	out.Categories = []string{"medicine"}

	pred := BuildPredicate(Filter{CategoryID: "first-aid"})

	assert.True(t, pred(&in))
	assert.False(t, pred(&out))
}

func TestBuildPredicateSupplierStatusApproval(t *testing.T) {
	supplier := uuid.New()
	active := models.ProductStatusActive
	approved := models.ApprovalStatusApproved

	match := testProduct("match", 100)
	match.SupplierID = supplier
	match.Status = active
	match.ApprovalStatus = approved

	wrongSupplier := match
	wrongSupplier.SupplierID = uuid.New()
	wrongStatus := match
	wrongStatus.Status = models.ProductStatusInactive

	pred := BuildPredicate(Filter{
		SupplierID:     &supplier,
		Status:         &active,
		ApprovalStatus: &approved,
	})

	assert.True(t, pred(&match))
	assert.False(t, pred(&wrongSupplier))
	assert.False(t, pred(&wrongStatus))
}

func TestBuildPredicatePriceBoundsAreInclusive(t *testing.T) {
	min := 100.0
	max := 200.0
	pred := BuildPredicate(Filter{MinPrice: &min, MaxPrice: &max})

	atMin := testProduct("a", 100)
	atMax := testProduct("b", 200)
	below := testProduct("c", 99.99)
	above := testProduct("d", 200.01)

	assert.True(t, pred(&atMin))
	assert.True(t, pred(&atMax))
	assert.False(t, pred(&below))
	assert.False(t, pred(&above))
}

func TestBuildPredicateZeroBoundIsARealConstraint(t *testing.T) {
	zero := 0.0
	pred := BuildPredicate(Filter{MaxPrice: &zero})

	free := testProduct("free", 0)
	paid := testProduct("paid", 1)

	assert.True(t, pred(&free))
	assert.False(t, pred(&paid))
}

func TestBuildPredicateConjunction(t *testing.T) {
	min := 50.0
	p := testProduct("Vitamin C", 100)
	p.Categories = []string{"supplements"}

	// Both constraints hold.
	both := BuildPredicate(Filter{Search: "vitamin", MinPrice: &min})
	assert.True(t, both(&p))

	// Tightening one dimension can only shrink the result.
	highMin := 200.0
	tightened := BuildPredicate(Filter{Search: "vitamin", MinPrice: &highMin})
	assert.False(t, tightened(&p))
}

func TestApplyPredicatePreservesOrder(t *testing.T) {
	records := []models.Product{
		testProduct("keep-1", 10),
		testProduct("drop", 999),
		testProduct("keep-2", 20),
	}
	max := 100.0

	matched := ApplyPredicate(records, BuildPredicate(Filter{MaxPrice: &max}))

	assert.Len(t, matched, 2)
	assert.Equal(t, "keep-1", matched[0].Name)
	assert.Equal(t, "keep-2", matched[1].Name)
}
