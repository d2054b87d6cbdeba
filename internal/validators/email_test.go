package validators

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeResolver struct {
	mx  map[string][]*net.MX
	ips map[string][]net.IPAddr
}

func (f fakeResolver) LookupMX(_ context.Context, name string) ([]*net.MX, error) {
	if v, ok := f.mx[name]; ok {
		return v, nil
	}
	return nil, errors.New("no such host")
}

func (f fakeResolver) LookupIPAddr(_ context.Context, host string) ([]net.IPAddr, error) {
	if v, ok := f.ips[host]; ok {
		return v, nil
	}
	return nil, errors.New("no such host")
}

func TestNormalizeEmail(t *testing.T) {
	email, ok := NormalizeEmail("  Ana@Example.COM ")
	assert.True(t, ok)
	assert.Equal(t, "ana@example.com", email)

	for _, bad := range []string{"", "ana", "ana@", "@example.com", "ana@localhost", "Ana <ana@example.com>"} {
		_, ok := NormalizeEmail(bad)
		assert.False(t, ok, bad)
	}
}

func TestIsEmailDomainValid(t *testing.T) {
	r := fakeResolver{
		mx:  map[string][]*net.MX{"mail.com": {{Host: "mx.mail.com.", Pref: 10}}},
		ips: map[string][]net.IPAddr{"site.com": {{IP: net.ParseIP("10.0.0.1")}}},
	}

	assert.True(t, IsEmailDomainValid(t.Context(), r, "ana@mail.com"))
	assert.True(t, IsEmailDomainValid(t.Context(), r, "ana@site.com"))
	assert.False(t, IsEmailDomainValid(t.Context(), r, "ana@nothing.com"))
	assert.False(t, IsEmailDomainValid(t.Context(), r, "ana@"))
}
