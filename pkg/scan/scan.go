package scan

// DefaultWorkers is the default number of concurrent extraction workers.
const DefaultWorkers = 8

// DefaultPipReqNames are the pip requirements file names recognized when
// Options.PipReqNames is empty.
var DefaultPipReqNames = []string{"requirements.txt", "requirements-dev.txt"}

// Options configures a scan.
type Options struct {
	PipReqNames []string             // pip requirements file names to recognize
	Workers     int                  // concurrent extraction workers (default: 8)
	Logger      func(string, ...any) // warning callback (optional)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if len(opts.PipReqNames) == 0 {
		opts.PipReqNames = DefaultPipReqNames
	}
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}
