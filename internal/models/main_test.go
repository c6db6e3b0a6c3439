package models

import "testing"

func TestBehaviorTypePoints(t *testing.T) {
	tests := []struct {
		typ    BehaviorType
		points int
	}{
		{PaymentOnTime, 10},
		{PaymentLate, -15},
		{CreditUtilizationLow, 5},
		{CreditUtilizationHigh, -5},
		{NewCreditAccount, 3},
		{CreditCheck, -2},
	}
	for _, tt := range tests {
		if got := tt.typ.Points(); got != tt.points {
			t.Errorf("%s: expected %d points, got %d", tt.typ, tt.points, got)
		}
	}
}

func TestBehaviorTypeLabelCoversAllTypes(t *testing.T) {
	for _, typ := range BehaviorTypes() {
		if !typ.Valid() {
			t.Errorf("%s: listed type is not valid", typ)
		}
		if typ.Label() == string(typ) {
			t.Errorf("%s: missing label", typ)
		}
	}
}

func TestBehaviorTypeUnknown(t *testing.T) {
	unknown := BehaviorType("mortgage_paid_off")
	if unknown.Valid() {
		t.Error("expected unknown type to be invalid")
	}
	if unknown.Points() != 0 {
		t.Errorf("expected 0 points for unknown type, got %d", unknown.Points())
	}
	if unknown.Label() != "mortgage_paid_off" {
		t.Errorf("expected raw label fallback, got %q", unknown.Label())
	}
}

func TestRewardCategoryIcon(t *testing.T) {
	for _, cat := range []RewardCategory{CategoryCashback, CategoryDiscount, CategoryFeature, CategoryBadge} {
		if !cat.Valid() {
			t.Errorf("%s: expected valid category", cat)
		}
		if cat.Icon() == "🎁" {
			t.Errorf("%s: missing icon", cat)
		}
	}
	if RewardCategory("voucher").Valid() {
		t.Error("expected unknown category to be invalid")
	}
}

func TestUserRoleValid(t *testing.T) {
	if !RoleUser.Valid() || !RoleAdmin.Valid() {
		t.Error("expected built-in roles to be valid")
	}
	if UserRole("moderator").Valid() {
		t.Error("expected unknown role to be invalid")
	}
}
