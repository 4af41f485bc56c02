package smd

import "time"

var refTime = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
