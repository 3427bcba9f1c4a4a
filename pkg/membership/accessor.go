// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"github.com/mx-olulo/scope-service/internal/types"
)

// Accessor exposes the capabilities of one resolved (user, tenant) pair.
type Accessor struct {
	role types.RoleKind
}

func (a *Accessor) Role() types.RoleKind { return a.role }

func (a *Accessor) CanManage() bool { return a.role.CanManage() }

func (a *Accessor) CanView() bool { return a.role.CanView() }

func (a *Accessor) IsOwner() bool { return a.role == types.RoleOwner }

func (a *Accessor) IsManager() bool { return a.role == types.RoleManager }

func (a *Accessor) IsViewer() bool { return a.role == types.RoleViewer }
