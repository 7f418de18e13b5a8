package client

// Client is a runnable feedback client. Run blocks until the user quits or
// the process is signalled.
type Client interface {
	Run() error
}
