package snbt

import "errors"

var ErrParse = errors.New("parse error")
