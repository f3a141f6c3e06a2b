package io

import (
	"errors"

	"github.com/ezrec/assembunny/translate"
)

var f = translate.From

var (
	// Sink errors
	ErrChannelFull = errors.New(f("channel full"))
	ErrTapeMissing = errors.New(f("tape output missing"))
)
