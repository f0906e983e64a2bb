package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rerrors "github.com/waves-survey/ripval/pkg/errors"
)

func TestNewFilterName(t *testing.T) {
	f := NewFilterName("VST_r", "em.opt.R")
	assert.Equal(t, "VST_r", f.Name)
	assert.Equal(t, "r_VST", f.Reversed)
	assert.Equal(t, "em.opt.R", f.SecondaryUCD)

	single := NewFilterName("Ks", "em.IR.K")
	assert.Equal(t, "Ks", single.Reversed)

	triple := NewFilterName("a_b_c", "")
	assert.Equal(t, "c_b_a", triple.Reversed)
}

func TestParsePreservesDocumentOrder(t *testing.T) {
	protectedYAML := []byte(`
surface_brightness:
  common_mistakes: [sb, mu]
  ucd: [phot.mag.sb]
  unit: [mag/arcsec^2]
stellar_mass:
  common_mistakes: [mstar]
  ucd: [phys.mass]
  unit: [Msun]
redshift:
  common_mistakes: [z, zs]
  ucd: [src.redshift]
`)
	filtersYAML := []byte(`
VST_u:
  secondary_ucd: em.opt.U
VST_g:
  secondary_ucd: em.opt.B
`)
	exceptionsYAML := []byte(`
J2000:
  ucd: time.equinox
uberID:
  ucd: meta.id
`)

	v, err := Parse([]string{"fred"}, protectedYAML, filtersYAML, exceptionsYAML)
	require.NoError(t, err)

	require.Len(t, v.Protected, 3)
	assert.Equal(t, "surface_brightness", v.Protected[0].Name)
	assert.Equal(t, "stellar_mass", v.Protected[1].Name)
	assert.Equal(t, "redshift", v.Protected[2].Name)
	assert.Equal(t, []string{"z", "zs"}, v.Protected[2].Representations)
	assert.Equal(t, []string{"Msun"}, v.Protected[1].Units)

	require.Len(t, v.Filters, 2)
	assert.Equal(t, "VST_u", v.Filters[0].Name)
	assert.Equal(t, "u_VST", v.Filters[0].Reversed)
	assert.Equal(t, "VST_g", v.Filters[1].Name)

	require.Len(t, v.Exceptions, 2)
	assert.Equal(t, "J2000", v.Exceptions[0].Name)
	assert.Equal(t, "uberID", v.Exceptions[1].Name)

	assert.Equal(t, []string{"fred"}, v.Banned)
}

func TestParseRejectsNonMapping(t *testing.T) {
	_, err := Parse(nil, []byte("- a\n- b\n"), nil, nil)
	require.Error(t, err)
	assert.True(t, rerrors.IsCode(err, rerrors.ErrCodeInvalidConfig))
}

func TestParseEmptyDocuments(t *testing.T) {
	v, err := Parse(DefaultBanned, nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, v.Protected)
	assert.Empty(t, v.Filters)
	assert.Empty(t, v.Exceptions)
}

func TestDefault(t *testing.T) {
	v, err := Default()
	require.NoError(t, err)
	assert.NotEmpty(t, v.Protected)
	assert.NotEmpty(t, v.Filters)
	assert.NotEmpty(t, v.Exceptions)
	assert.Equal(t, DefaultBanned, v.Banned)

	// The embedded vocabulary is parsed once and cached.
	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, v, again)
}
