package sysprim

import "errors"

// threadOptions holds configuration options for CreateThread.
type threadOptions struct {
	stackSize int
}

// ThreadOption configures a thread created by CreateThread.
type ThreadOption interface {
	applyThread(*threadOptions) error
}

// threadOptionImpl implements ThreadOption.
type threadOptionImpl struct {
	applyThreadFunc func(*threadOptions) error
}

func (o *threadOptionImpl) applyThread(opts *threadOptions) error {
	return o.applyThreadFunc(opts)
}

// WithStackSize requests a stack size in bytes for the new thread; 0 means
// the platform default. Goroutine stacks grow on demand, so the value is
// validated and recorded for API parity but does not pre-size the stack.
func WithStackSize(bytes int) ThreadOption {
	return &threadOptionImpl{func(opts *threadOptions) error {
		if bytes < 0 {
			return errors.New("sysprim: negative stack size")
		}
		opts.stackSize = bytes
		return nil
	}}
}

// resolveThreadOptions applies ThreadOption instances to threadOptions.
func resolveThreadOptions(opts []ThreadOption) (*threadOptions, error) {
	cfg := &threadOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue // Skip nil options gracefully
		}
		if err := opt.applyThread(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
