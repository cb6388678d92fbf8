package list_reservations

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PresenceBooking/internal/validation"
)

func TestToFilter(t *testing.T) {
	filter, err := ToFilter(url.Values{
		"date":     {"2030-06-01"},
		"location": {"  gare "},
		"limit":    {"20"},
		"offset":   {"40"},
	})
	require.NoError(t, err)
	require.NotNil(t, filter.Date)
	assert.Equal(t, "2030-06-01", filter.Date.String())
	require.NotNil(t, filter.Location)
	assert.Equal(t, "gare", *filter.Location)
	assert.Equal(t, 20, filter.Limit)
	assert.Equal(t, 40, filter.Offset)
}

func TestToFilter_Empty(t *testing.T) {
	filter, err := ToFilter(url.Values{})
	require.NoError(t, err)
	assert.Nil(t, filter.Date)
	assert.Nil(t, filter.Location)
	assert.Zero(t, filter.Limit)
}

func TestToFilter_Invalid(t *testing.T) {
	for field, value := range map[string]string{"date": "01/06/2030", "limit": "-1", "offset": "x"} {
		_, err := ToFilter(url.Values{field: {value}})

		var vErr *validation.Error
		require.ErrorAs(t, err, &vErr, field)
		assert.Equal(t, field, vErr.Field)
	}
}
