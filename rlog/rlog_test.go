package rlog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type capture struct {
	warnings []string
}

func (c *capture) Infof(format string, args ...interface{})  {}
func (c *capture) Errorf(format string, args ...interface{}) {}
func (c *capture) Fatalf(format string, args ...interface{}) {}
func (c *capture) Warningf(format string, args ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

func TestWarningfRoutesToInstalledLogger(t *testing.T) {
	prev := logger
	defer SetLogger(prev)

	c := &capture{}
	SetLogger(c)
	Warningf("skipped axiom %s", "ex:Foo")
	require.Equal(t, []string{"skipped axiom ex:Foo"}, c.warnings)
}

func TestVerbosity(t *testing.T) {
	SetV(0)
	require.False(t, V(1))
	SetV(2)
	require.True(t, V(1))
	require.True(t, V(2))
	require.False(t, V(3))
}
