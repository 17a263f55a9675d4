// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package settings

import "context"

// Store defines the data access contract for branding values.
type Store interface {

	/*
		List returns every stored setting.
	*/
	List(context context.Context) ([]*Setting, error)

	/*
		Upsert writes a setting, inserting or replacing by key.
	*/
	Upsert(context context.Context, setting *Setting) error
}
