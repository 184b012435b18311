package client

import "errors"

var ErrIncompleteClient = errors.New("client services and workers are required")
