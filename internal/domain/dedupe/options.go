// Package dedupe detects records that are near-identical by a composite key.
package dedupe

// Option applies a configuration option to the Detector.
type Option func(*Detector)

// WithKeyFunc replaces the composite key used to group records.
func WithKeyFunc(fn KeyFunc) Option {
	return func(d *Detector) {
		if fn != nil {
			d.key = fn
		}
	}
}
