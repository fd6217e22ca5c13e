// Package view previews developed frames in a desktop window.
package view

import "github.com/zeebo/errs"

// Error is the class of view errors.
var Error = errs.Class("view")
