package validators

import (
	"context"
	"net"
	"strings"
)

// Resolver is the subset of *net.Resolver used for domain checks.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// IsEmailDomainValid reports whether the e-mail's domain has MX or address records.
func IsEmailDomainValid(ctx context.Context, r Resolver, email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := r.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := r.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}

// DomainChecker validates e-mail domains through DNS when enabled.
type DomainChecker struct {
	enabled  bool
	resolver Resolver
}

func NewDomainChecker(enabled bool, r Resolver) *DomainChecker {
	if r == nil {
		r = net.DefaultResolver
	}
	return &DomainChecker{enabled: enabled, resolver: r}
}

// Check returns a validation error when the check is enabled and the domain does not resolve.
// A nil checker never fails.
func (d *DomainChecker) Check(ctx context.Context, field, email string) error {
	if d == nil || !d.enabled {
		return nil
	}
	if !IsEmailDomainValid(ctx, d.resolver, email) {
		return Field(field, "E-mail domain does not accept mail")
	}
	return nil
}
