package radio

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeProc records one launched process and ends when its context does.
type fakeProc struct {
	name string
	args []string
	ctx  context.Context
}

func newFakePlayer(t *testing.T) (*Player, *[]fakeProc) {
	t.Helper()
	var procs []fakeProc
	p := NewPlayer("fakeplayer", nil, "fakespeech", nil, zap.NewNop())
	p.start = func(ctx context.Context, name string, args ...string) (func() error, error) {
		procs = append(procs, fakeProc{name: name, args: args, ctx: ctx})
		return func() error {
			<-ctx.Done()
			return ctx.Err()
		}, nil
	}
	return p, &procs
}

func TestPlayClaimsSlot(t *testing.T) {
	p, procs := newFakePlayer(t)

	require.NoError(t, p.Play(Stations[0]))

	owner, st := p.Current()
	assert.Equal(t, OwnerStation, owner)
	require.NotNil(t, st)
	assert.Equal(t, Stations[0].ID, st.ID)
	assert.True(t, p.Playing())

	require.Len(t, *procs, 1)
	got := (*procs)[0]
	assert.Equal(t, "fakeplayer", got.name)
	assert.Contains(t, got.args, Stations[0].URL)
}

func TestPlayStopsPreviousStation(t *testing.T) {
	p, procs := newFakePlayer(t)

	require.NoError(t, p.Play(Stations[0]))
	require.NoError(t, p.Play(Stations[1]))

	require.Len(t, *procs, 2)
	assert.Error(t, (*procs)[0].ctx.Err(), "first stream must be cancelled")
	assert.NoError(t, (*procs)[1].ctx.Err())

	_, st := p.Current()
	require.NotNil(t, st)
	assert.Equal(t, Stations[1].ID, st.ID)
}

func TestPlaySameStationToggles(t *testing.T) {
	p, procs := newFakePlayer(t)

	require.NoError(t, p.Play(Stations[0]))
	require.NoError(t, p.Play(Stations[0]))

	owner, _ := p.Current()
	assert.Equal(t, OwnerNone, owner)
	require.Len(t, *procs, 1)
	assert.Error(t, (*procs)[0].ctx.Err())
}

func TestSpeakEvictsStation(t *testing.T) {
	p, procs := newFakePlayer(t)

	require.NoError(t, p.Play(Stations[0]))
	require.NoError(t, p.Speak("No princípio criou Deus os céus e a terra."))

	require.Len(t, *procs, 2)
	assert.Error(t, (*procs)[0].ctx.Err())
	assert.Equal(t, "fakespeech", (*procs)[1].name)

	owner, st := p.Current()
	assert.Equal(t, OwnerSpeech, owner)
	assert.Nil(t, st)
}

func TestPlayEvictsSpeech(t *testing.T) {
	p, procs := newFakePlayer(t)

	require.NoError(t, p.Speak("texto"))
	require.NoError(t, p.Play(Stations[2]))

	require.Len(t, *procs, 2)
	assert.Error(t, (*procs)[0].ctx.Err())

	owner, _ := p.Current()
	assert.Equal(t, OwnerStation, owner)
}

func TestStopReleasesSlot(t *testing.T) {
	p, procs := newFakePlayer(t)

	require.NoError(t, p.Play(Stations[0]))
	p.Stop()

	owner, st := p.Current()
	assert.Equal(t, OwnerNone, owner)
	assert.Nil(t, st)
	assert.Error(t, (*procs)[0].ctx.Err())
}

func TestSpeakEmptyOnlyStops(t *testing.T) {
	p, procs := newFakePlayer(t)

	require.NoError(t, p.Play(Stations[0]))
	require.NoError(t, p.Speak(""))

	require.Len(t, *procs, 1)
	owner, _ := p.Current()
	assert.Equal(t, OwnerNone, owner)
}

func TestPlayStartError(t *testing.T) {
	p, _ := newFakePlayer(t)
	p.start = func(ctx context.Context, name string, args ...string) (func() error, error) {
		return nil, errors.New("no such binary")
	}

	err := p.Play(Stations[0])
	require.Error(t, err)
	owner, _ := p.Current()
	assert.Equal(t, OwnerNone, owner)
}

func TestStationByID(t *testing.T) {
	st := StationByID("cpad_web")
	require.NotNil(t, st)
	assert.Equal(t, "Rádio CPAD", st.Name)
	assert.Nil(t, StationByID("missing"))
}
