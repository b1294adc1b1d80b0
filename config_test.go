package hashring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfig_Defaults(t *testing.T) {
	c := Config{}.withDefaults()

	assert.Equal(t, "default", c.Name)
	assert.Equal(t, DefaultReplicationFactor, c.ReplicationFactor)
	assert.Equal(t, DefaultLoadFactor, c.LoadFactor)
	assert.NotNil(t, c.Hasher)
}

func TestConfig_Normalisation(t *testing.T) {
	c := Config{ReplicationFactor: -3, LoadFactor: 0.5}.withDefaults()

	assert.Equal(t, DefaultReplicationFactor, c.ReplicationFactor)
	assert.Equal(t, DefaultLoadFactor, c.LoadFactor,
		"a load factor below 1 cannot be satisfied, so must be replaced")
}

func TestConfig_FromYAML(t *testing.T) {
	doc := []byte(`
name: edge
replication_factor: 50
load: 1.5
`)
	var c Config
	require.NoError(t, yaml.Unmarshal(doc, &c))

	r := New(c)
	assert.Equal(t, 50, r.ReplicationFactor())
	assert.Equal(t, 1.5, r.config.LoadFactor)
	assert.Equal(t, "edge", r.config.Name)
}
