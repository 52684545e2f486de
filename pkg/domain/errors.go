package domain

import "errors"

// ErrUnknownAlgorithm is returned when an algorithm name is not bubble or quick.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// ErrUnknownStep is returned when decoding a step with an unrecognized tag.
var ErrUnknownStep = errors.New("unknown step kind")

// ErrMalformedStep is returned when a step's payload does not match its tag.
var ErrMalformedStep = errors.New("malformed step")

// ErrCacheMiss is returned by step caches that hold no entry for a key.
var ErrCacheMiss = errors.New("step cache miss")
