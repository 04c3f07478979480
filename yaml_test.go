package nonempty

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type upstream struct {
	Name  string      `yaml:"name"`
	Hosts Vec[string] `yaml:"hosts"`
}

func TestVecYAML(t *testing.T) {
	var u upstream
	require.NoError(t, yaml.Unmarshal([]byte("name: api\nhosts:\n  - a.internal\n  - b.internal\n"), &u))
	require.Equal(t, []string{"a.internal", "b.internal"}, u.Hosts.Raw())

	out, err := yaml.Marshal(u)
	require.NoError(t, err)
	require.Equal(t, "name: api\nhosts:\n    - a.internal\n    - b.internal\n", string(out))
}

func TestVecYAMLRejectsEmpty(t *testing.T) {
	var u upstream
	err := yaml.Unmarshal([]byte("name: api\nhosts: []\n"), &u)
	require.ErrorIs(t, err, ErrEmpty)
	require.Contains(t, err.Error(), "line 2")

	err = yaml.Unmarshal([]byte("hosts: nope\n"), &u)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrEmpty)
}

func TestSliceYAML(t *testing.T) {
	arr := [2]int{4, 5}
	out, err := yaml.Marshal(ViewArray[int](&arr))
	require.NoError(t, err)
	require.Equal(t, "- 4\n- 5\n", string(out))
}
