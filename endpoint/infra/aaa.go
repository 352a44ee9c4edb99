// Package infra provides endpoint descriptors for the ND Infra API under
// /api/v1/infra, currently the AAA local-user operations.
package infra

import (
	"github.com/banglin/go-nd-endpoints/basepath"
	"github.com/banglin/go-nd-endpoints/endpoint"
	"github.com/banglin/go-nd-endpoints/field"
)

// localUsers is the shared base for the localUsers endpoint family. LoginID
// is optional: when set, the path addresses a single user.
type localUsers struct {
	LoginID field.String
}

func newLocalUsers() localUsers {
	return localUsers{LoginID: field.LoginID()}
}

// Path composes the endpoint path, addressing one user when LoginID is set.
func (e *localUsers) Path() (string, error) {
	if e.LoginID.IsSet() {
		return basepath.InfraAAA("localUsers", e.LoginID.Get()), nil
	}
	return basepath.InfraAAA("localUsers"), nil
}

// LocalUsersGet retrieves local users, or one user when LoginID is set.
//
//	GET /api/v1/infra/aaa/localUsers
//	GET /api/v1/infra/aaa/localUsers/{loginID}
type LocalUsersGet struct {
	localUsers
}

// NewLocalUsersGet returns a descriptor with no fields set.
func NewLocalUsersGet() *LocalUsersGet {
	return &LocalUsersGet{newLocalUsers()}
}

func (e *LocalUsersGet) Verb() endpoint.Verb { return endpoint.VerbGet }

// LocalUsersPost creates a local user. The user definition goes in the
// request body.
//
//	POST /api/v1/infra/aaa/localUsers
type LocalUsersPost struct {
	localUsers
}

// NewLocalUsersPost returns a descriptor with no fields set.
func NewLocalUsersPost() *LocalUsersPost {
	return &LocalUsersPost{newLocalUsers()}
}

func (e *LocalUsersPost) Verb() endpoint.Verb { return endpoint.VerbPost }

// LocalUsersPut updates a local user.
//
//	PUT /api/v1/infra/aaa/localUsers/{loginID}
type LocalUsersPut struct {
	localUsers
}

// NewLocalUsersPut returns a descriptor with no fields set.
func NewLocalUsersPut() *LocalUsersPut {
	return &LocalUsersPut{newLocalUsers()}
}

func (e *LocalUsersPut) Verb() endpoint.Verb { return endpoint.VerbPut }

// LocalUsersDelete deletes a local user.
//
//	DELETE /api/v1/infra/aaa/localUsers/{loginID}
type LocalUsersDelete struct {
	localUsers
}

// NewLocalUsersDelete returns a descriptor with no fields set.
func NewLocalUsersDelete() *LocalUsersDelete {
	return &LocalUsersDelete{newLocalUsers()}
}

func (e *LocalUsersDelete) Verb() endpoint.Verb { return endpoint.VerbDelete }

var (
	_ endpoint.Descriptor = (*LocalUsersGet)(nil)
	_ endpoint.Descriptor = (*LocalUsersPost)(nil)
	_ endpoint.Descriptor = (*LocalUsersPut)(nil)
	_ endpoint.Descriptor = (*LocalUsersDelete)(nil)
)
