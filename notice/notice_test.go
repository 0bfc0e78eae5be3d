package notice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_Flag_ShowExpires(t *testing.T) {
	f := New(20 * time.Millisecond)

	f.Show("fetch failed")
	msg, ok := f.Visible()
	require.True(t, ok)
	require.Equal(t, "fetch failed", msg)

	require.Eventually(t, func() bool {
		_, ok := f.Visible()
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func Test_Flag_ShowRearms(t *testing.T) {
	f := New(time.Hour)

	f.Show("first")
	f.Show("second")

	msg, ok := f.Visible()
	require.True(t, ok)
	require.Equal(t, "second", msg)

	// A timer from the first Show must not hide the second message.
	f.expire(1)
	_, ok = f.Visible()
	require.True(t, ok)

	f.Stop()
}

func Test_Flag_Hide(t *testing.T) {
	f := New(time.Hour)

	f.Show("saved")
	f.Hide()

	_, ok := f.Visible()
	require.False(t, ok)
}

func Test_Flag_Stop(t *testing.T) {
	f := New(50 * time.Millisecond)

	f.Show("kept")
	f.Stop()
	time.Sleep(100 * time.Millisecond)

	msg, ok := f.Visible()
	require.True(t, ok)
	require.Equal(t, "kept", msg)
}

func Test_New_DefaultDuration(t *testing.T) {
	require.Equal(t, DefaultDuration, New(0).duration)
	require.Equal(t, DefaultDuration, New(-time.Second).duration)
}
