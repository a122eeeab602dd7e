package tui

import (
	"github.com/MKhiriev/athenc-client/models"
)

type transformDoneMsg struct {
	result models.TransformResult
	err    error
}

type clearNotificationMsg struct {
	gen int
}

type copiedMsg struct {
	err error
}
