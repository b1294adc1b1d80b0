package hashring

const (
	// DefaultReplicationFactor is the number of virtual nodes placed per
	// host when Config.ReplicationFactor is unset. More virtual nodes
	// smooth the key distribution at the cost of a larger index.
	DefaultReplicationFactor = 10

	// DefaultLoadFactor is the bounded-load slack multiplier when
	// Config.LoadFactor is unset. 1.25 allows each host a quarter more
	// than the mean before overflowing, which keeps overflow scans rare
	// without letting any host run away.
	DefaultLoadFactor = 1.25
)

// Config contains parameters for a new ring. The zero value is usable;
// every field has a default. The yaml tags match the option names
// embedders tend to carry in service config files; Hasher is code, so it
// has no file representation.
type Config struct {

	// Name is like a namespace for the ring, distinguishing the metrics
	// of multiple instances within a single program. Rings sharing a name
	// share time series.
	Name string `yaml:"name"`

	// ReplicationFactor is the number of virtual nodes placed per host.
	// Values below 1 are replaced with DefaultReplicationFactor.
	ReplicationFactor int `yaml:"replication_factor"`

	// LoadFactor is the multiplier applied to the mean load to compute
	// the per-host cap used by GetLeast. It trades balance tightness for
	// overflow frequency. Values below 1 would produce a cap no host can
	// satisfy, so they are replaced with DefaultLoadFactor.
	LoadFactor float64 `yaml:"load"`

	// Hasher maps host names and lookup keys to ring positions. Defaults
	// to XXHash. All rings that must agree on ownership, e.g. across a
	// fleet, have to use the same hasher.
	Hasher Hasher `yaml:"-"`
}

// withDefaults fills in unset fields. Values are normalised once here so
// the ring never has to re-validate.
func (c Config) withDefaults() Config {
	if c.Name == "" {
		c.Name = "default"
	}
	if c.ReplicationFactor < 1 {
		c.ReplicationFactor = DefaultReplicationFactor
	}
	if c.LoadFactor < 1 {
		c.LoadFactor = DefaultLoadFactor
	}
	if c.Hasher == nil {
		c.Hasher = XXHash
	}
	return c
}
