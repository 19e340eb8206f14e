package domain

import (
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidStaffSelector = errors.New("invalid staff selector")

// StaffSelector picks either one staff member or ANY. The zero value is ANY.
type StaffSelector struct {
	StaffID int64
}

var AnyStaff = StaffSelector{}

func SpecificStaff(id int64) StaffSelector {
	return StaffSelector{StaffID: id}
}

func (s StaffSelector) IsAny() bool {
	return s.StaffID == 0
}

func (s StaffSelector) String() string {
	if s.IsAny() {
		return AnyStaffToken
	}
	return strconv.FormatInt(s.StaffID, 10)
}

// Matches reports whether staff is eligible under the selector.
func (s StaffSelector) Matches(staff *Staff) bool {
	return s.IsAny() || staff.ID == s.StaffID
}

// ParseStaffSelector accepts "any" (case-insensitive), an empty string, or a positive id.
func ParseStaffSelector(raw string) (StaffSelector, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, AnyStaffToken) {
		return AnyStaff, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return StaffSelector{}, ErrInvalidStaffSelector
	}
	return SpecificStaff(id), nil
}
