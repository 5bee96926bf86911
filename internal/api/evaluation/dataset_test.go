package evaluation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `id,name,lat,lon,cost,rating,reviews_count,type,all_types,true_vibe,address,serves_wine,reservable
v1,Trattoria Roma,45.4215,-75.6972,40.0,4.5,200.0,italian_restaurant,italian_restaurant restaurant,"romantic,cozy","93 Murray St, Ottawa",true,True
v2,Majors Hill Park,45.4270,-75.6945,0,4.7,800,park,park point_of_interest,,"Mackenzie Ave, Ottawa",false,
,Ghost Venue,0,0,0,0,0,bar,bar,,,false,false
v3,The Velvet Room,45.4260,-75.6930,20,4.3,150,bar,bar night_club,energetic,"62 York St, Ottawa",FALSE,false
`

func TestReadVenues(t *testing.T) {
	venues, err := ReadVenues(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, venues, 3, "rows without an id are skipped")

	roma := venues[0]
	assert.Equal(t, "v1", roma.ID)
	assert.Equal(t, "Trattoria Roma", roma.Name)
	assert.InDelta(t, 45.4215, roma.Latitude, 0.0001)
	assert.Equal(t, 40.0, roma.Cost)
	assert.Equal(t, 200, roma.ReviewsCount, "float-formatted counts parse")
	assert.Equal(t, "italian_restaurant", roma.PrimaryType)
	assert.Equal(t, "romantic,cozy", roma.Vibes)
	assert.True(t, roma.ServesWine)
	assert.True(t, roma.Reservable, "bool parsing is case-insensitive")

	park := venues[1]
	assert.Equal(t, "v2", park.ID)
	assert.Zero(t, park.Cost)
	assert.False(t, park.Reservable, "empty cell is false")
}

func TestReadVenuesMissingIDColumn(t *testing.T) {
	_, err := ReadVenues(strings.NewReader("name,cost\nRoma,40\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id column")
}

func TestReadVenuesPartialExport(t *testing.T) {
	// only a handful of columns, the rest default to neutral values
	venues, err := ReadVenues(strings.NewReader("id,name,cost\nv1,Roma,40\n"))
	require.NoError(t, err)
	require.Len(t, venues, 1)

	assert.Equal(t, "Roma", venues[0].Name)
	assert.Zero(t, venues[0].Rating)
	assert.False(t, venues[0].ServesWine)
}

func TestLoadVenuesCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "venues.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	venues, err := LoadVenuesCSV(path)
	require.NoError(t, err)
	assert.Len(t, venues, 3)

	_, err = LoadVenuesCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
