package store

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/csmblade/PANfm/internal/crypto"
	"github.com/csmblade/PANfm/internal/logger"
	"github.com/stretchr/testify/require"
)

// seqIDs hands out "dev-1", "dev-2", ...
type seqIDs struct {
	n atomic.Int64
}

func (g *seqIDs) Generate() string {
	return fmt.Sprintf("dev-%d", g.n.Add(1))
}

func newTestCodec(t *testing.T) crypto.SecretCodec {
	t.Helper()
	codec, err := crypto.NewSecretCodec(bytes.Repeat([]byte{0x24}, crypto.KeySize))
	require.NoError(t, err)
	return codec
}

func newOtherCodec(t *testing.T) crypto.SecretCodec {
	t.Helper()
	codec, err := crypto.NewSecretCodec(bytes.Repeat([]byte{0x7e}, crypto.KeySize))
	require.NoError(t, err)
	return codec
}

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func newTestDeviceStorage(t *testing.T, codec crypto.SecretCodec) (*deviceFileStorage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "devices.json")
	s := NewDeviceStorage(path, codec, &seqIDs{}, logger.Nop()).(*deviceFileStorage)
	s.now = func() time.Time { return fixedNow }
	return s, path
}
