package service

import (
	"context"
	"crypto/tls"
	"fmt"
	"strconv"
	"strings"
	"time"

	"team-management-backend/internal/config"

	"github.com/go-ldap/ldap/v3"
)

// ldapClient is the subset of *ldap.Conn used by the directory
type ldapClient interface {
	Bind(username, password string) error
	Search(searchRequest *ldap.SearchRequest) (*ldap.SearchResult, error)
	Close() error
	SetTimeout(d time.Duration)
}

var dialLDAP = func(network, addr string, cfg *tls.Config) (ldapClient, error) {
	return ldap.DialTLS(network, addr, cfg)
}

// LDAPUserDirectory resolves users by searching LDAP on LDAP_USER_ID_ATTRIBUTE
type LDAPUserDirectory struct {
	cfg *config.Config
}

// NewLDAPUserDirectory creates an LDAP backed user directory
func NewLDAPUserDirectory(cfg *config.Config) *LDAPUserDirectory {
	return &LDAPUserDirectory{cfg: cfg}
}

// GetUser looks up the entry whose id attribute equals userID
func (d *LDAPUserDirectory) GetUser(ctx context.Context, userID uint) (*UserDetails, error) {
	addr := d.cfg.LDAPHost + ":" + d.cfg.LDAPPort

	l, err := dialLDAP("tcp", addr, &tls.Config{InsecureSkipVerify: d.cfg.LDAPInsecureSkipVerify})
	if err != nil {
		return nil, err
	}
	defer l.Close()

	if d.cfg.LDAPTimeoutSec > 0 {
		l.SetTimeout(time.Duration(d.cfg.LDAPTimeoutSec) * time.Second)
	}

	if err := l.Bind(d.cfg.LDAPBindDN, d.cfg.LDAPBindPW); err != nil {
		return nil, err
	}

	id := strconv.FormatUint(uint64(userID), 10)
	filter := "(" + d.idAttribute() + "=" + ldap.EscapeFilter(id) + ")"
	req := ldap.NewSearchRequest(
		d.cfg.LDAPBaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		1,
		d.cfg.LDAPTimeoutSec,
		false,
		filter,
		[]string{"displayName", "givenName", "sn", "mail"},
		nil,
	)

	res, err := l.Search(req)
	if err != nil {
		return nil, err
	}
	if len(res.Entries) == 0 {
		return nil, fmt.Errorf("user %d not found in directory", userID)
	}

	e := res.Entries[0]
	fullName := e.GetAttributeValue("displayName")
	if fullName == "" {
		fullName = strings.TrimSpace(e.GetAttributeValue("givenName") + " " + e.GetAttributeValue("sn"))
	}
	return &UserDetails{
		ID:       userID,
		FullName: fullName,
		Email:    e.GetAttributeValue("mail"),
	}, nil
}

func (d *LDAPUserDirectory) idAttribute() string {
	if d.cfg.LDAPUserIDAttribute == "" {
		return "uidNumber"
	}
	return d.cfg.LDAPUserIDAttribute
}
