package rappelconso

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
	"records": [
		{
			"recordid": "abc-123",
			"fields": {
				"nom_de_la_marque_du_produit": "Chocolat Noir Bio",
				"noms_des_modeles_ou_references": "Tablette 200g",
				"identification_des_produits": "GTIN 3017620422003",
				"date_de_publication": "2024-03-15",
				"motif_du_rappel": "Presence de salmonelle",
				"risques_encourus_par_le_consommateur": "Salmonellose",
				"description_complementaire_du_risque": "Ne pas consommer",
				"conduites_a_tenir_par_le_consommateur": "Rapporter au point de vente",
				"distributeurs": "Carrefour,Leclerc",
				"numero_de_lot": "L123,L124",
				"liens_vers_les_images": "https://example.com/img.jpg"
			}
		}
	]
}`

func TestFetchByBarcode_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/records/1.0/search/", r.URL.Path)
		assert.Equal(t, "rappelconso0", r.URL.Query().Get("dataset"))
		assert.Equal(t, "1234567890", r.URL.Query().Get("q"))
		assert.Equal(t, "100", r.URL.Query().Get("rows"))
		assert.Empty(t, r.URL.Query().Get("sort"))
		assert.Len(t, r.URL.Query()["facet"], 3)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	recalls, err := client.FetchByBarcode(context.Background(), "1234567890")

	require.NoError(t, err)
	require.Len(t, recalls, 1)

	recall := recalls[0]
	assert.Equal(t, "abc-123", recall.ID)
	assert.Equal(t, "Chocolat Noir Bio", recall.ProductName)
	assert.Equal(t, "Tablette 200g", recall.Brand)
	assert.Equal(t, "1234567890", recall.Barcode)
	assert.Equal(t, "GTIN 3017620422003", recall.GTIN)
	assert.Equal(t, "2024-03-15", recall.RecallDate)
	assert.Equal(t, "Presence de salmonelle", recall.Reason)
	assert.Equal(t, "Salmonellose", recall.Risk)
	assert.Equal(t, "Ne pas consommer", recall.Description)
	assert.Equal(t, "Rapporter au point de vente", recall.Actions)
	assert.Equal(t, []string{"Carrefour", "Leclerc"}, recall.Distributors)
	assert.Equal(t, []string{"L123", "L124"}, recall.BatchNumbers)
	assert.Equal(t, "https://example.com/img.jpg", recall.ImageURL)
}

func TestSearchByText_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "chocolat", r.URL.Query().Get("q"))
		assert.Equal(t, "50", r.URL.Query().Get("rows"))
		assert.Equal(t, "-date_de_publication", r.URL.Query().Get("sort"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	recalls, err := client.SearchByText(context.Background(), "chocolat")

	require.NoError(t, err)
	require.Len(t, recalls, 1)

	// Barcode and GTIN travel only on the barcode path
	assert.Empty(t, recalls[0].Barcode)
	assert.Empty(t, recalls[0].GTIN)
	assert.Equal(t, "Chocolat Noir Bio", recalls[0].ProductName)
}

func TestFetchByBarcode_OmitsAbsentListFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"records": [{"recordid": "r1", "fields": {"nom_de_la_marque_du_produit": "Lait"}}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	recalls, err := client.FetchByBarcode(context.Background(), "1234567890")

	require.NoError(t, err)
	require.Len(t, recalls, 1)

	// Absent source columns leave nil slices, not empty ones
	assert.Nil(t, recalls[0].Distributors)
	assert.Nil(t, recalls[0].BatchNumbers)
	assert.Equal(t, "", recalls[0].Reason)
}

func TestFetchByBarcode_UpstreamErrorDegradesToEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	recalls, err := client.FetchByBarcode(context.Background(), "1234567890")

	require.NoError(t, err)
	assert.Empty(t, recalls)
	assert.NotNil(t, recalls)
}

func TestSearchByText_MalformedPayloadDegradesToEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	recalls, err := client.SearchByText(context.Background(), "chocolat")

	require.NoError(t, err)
	assert.Empty(t, recalls)
}

func TestFetchByBarcode_UnreachableHostDegradesToEmpty(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")
	recalls, err := client.FetchByBarcode(context.Background(), "1234567890")

	require.NoError(t, err)
	assert.Empty(t, recalls)
}
