package domain

import (
	"fmt"
	"strings"
)

// ResourceType is a category of upstream record.
type ResourceType string

// Supported resource types.
const (
	ResourceProject  ResourceType = "project"
	ResourceCustomer ResourceType = "customer"
	ResourceDocument ResourceType = "document"
)

// AllResourceTypes returns every resource type in canonical order.
// Multi-type search results are grouped in this order.
func AllResourceTypes() []ResourceType {
	return []ResourceType{ResourceProject, ResourceCustomer, ResourceDocument}
}

// IsValid returns true if the resource type is recognised.
func (t ResourceType) IsValid() bool {
	switch t {
	case ResourceProject, ResourceCustomer, ResourceDocument:
		return true
	default:
		return false
	}
}

// Rank returns the position of the type in canonical order, or -1.
func (t ResourceType) Rank() int {
	for i, rt := range AllResourceTypes() {
		if rt == t {
			return i
		}
	}
	return -1
}

// String returns the string representation.
func (t ResourceType) String() string {
	return string(t)
}

// ParseResourceType parses a resource type name. Matching is
// case-insensitive and accepts the upstream names "job" and "account".
func ParseResourceType(s string) (ResourceType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "project", "projects", "job", "jobs":
		return ResourceProject, nil
	case "customer", "customers", "account", "accounts":
		return ResourceCustomer, nil
	case "document", "documents":
		return ResourceDocument, nil
	default:
		return "", fmt.Errorf("%w: unknown resource type %q", ErrInvalidInput, s)
	}
}
