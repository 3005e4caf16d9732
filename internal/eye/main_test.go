package eye

import (
	"os"
	"testing"

	"github.com/geohier/ghier/internal/dlog"
)

func TestMain(m *testing.M) {
	dlog.Mute()
	os.Exit(m.Run())
}
