package errors

import "fmt"

var (
	ErrWorkerPanic  = fmt.Errorf("worker panic")
	ErrDisconnected = fmt.Errorf("peer disconnected")
	ErrSetup        = fmt.Errorf("session setup failed")
)
