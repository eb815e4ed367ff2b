package pkg_test

import (
	"bytes"
	"testing"

	"github.com/2beens/weekplan/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombinedWriter(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	cw := pkg.NewCombinedWriter(&buf1, &buf2)

	n, err := cw.Write([]byte("test message"))
	require.NoError(t, err)

	assert.Equal(t, 2*len("test message"), n)
	assert.Equal(t, "test message", buf1.String())
	assert.Equal(t, "test message", buf2.String())
}
