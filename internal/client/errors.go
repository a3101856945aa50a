package client

import "errors"

var errNoUI = errors.New("client: ui runner is required")
