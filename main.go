// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/mx-olulo/scope-service/cmd"

func main() {
	cmd.Execute()
}
