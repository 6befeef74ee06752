package future

type Options struct {
	// Name labels the future in diagnostics and wrapped errors. Release
	// builds ignore it.
	Name string
}

type Option func(*Options)

func WithName(name string) Option {
	return func(o *Options) {
		o.Name = name
	}
}

func applyOptions(opts ...Option) Options {
	var options Options

	for _, opt := range opts {
		opt(&options)
	}

	return options
}
