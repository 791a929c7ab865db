package rappelconso

import (
	"strings"

	"github.com/foodrecall/backend/internal/domain"
)

// searchResponse is the envelope of the records search endpoint
type searchResponse struct {
	Records []searchRecord `json:"records"`
}

// searchRecord is one raw RappelConso record
type searchRecord struct {
	RecordID string       `json:"recordid"`
	Fields   recordFields `json:"fields"`
}

// recordFields carries the dataset's French-named columns
type recordFields struct {
	NomDeLaMarqueDuProduit              string `json:"nom_de_la_marque_du_produit"`
	NomsDesModelesOuReferences          string `json:"noms_des_modeles_ou_references"`
	IdentificationDesProduits           string `json:"identification_des_produits"`
	DateDePublication                   string `json:"date_de_publication"`
	MotifDuRappel                       string `json:"motif_du_rappel"`
	RisquesEncourusParLeConsommateur    string `json:"risques_encourus_par_le_consommateur"`
	DescriptionComplementaireDuRisque   string `json:"description_complementaire_du_risque"`
	ConduitesATenirParLeConsommateur    string `json:"conduites_a_tenir_par_le_consommateur"`
	Distributeurs                       string `json:"distributeurs"`
	NumeroDeLot                         string `json:"numero_de_lot"`
	LiensVersLesImages                  string `json:"liens_vers_les_images"`
}

// mapRecords converts raw RappelConso records into normalized recall records.
// barcode is attached to each record on the barcode lookup path and left
// empty for text search. Comma-delimited distributor and lot-number columns
// are split into slices; an absent column leaves the field nil rather than
// an empty slice.
func mapRecords(records []searchRecord, barcode string) []domain.RecallRecord {
	recalls := make([]domain.RecallRecord, 0, len(records))

	for _, record := range records {
		f := record.Fields

		recall := domain.RecallRecord{
			ID:          record.RecordID,
			ProductName: f.NomDeLaMarqueDuProduit,
			Brand:       f.NomsDesModelesOuReferences,
			RecallDate:  f.DateDePublication,
			Reason:      f.MotifDuRappel,
			Risk:        f.RisquesEncourusParLeConsommateur,
			Description: f.DescriptionComplementaireDuRisque,
			Actions:     f.ConduitesATenirParLeConsommateur,
			ImageURL:    f.LiensVersLesImages,
		}

		// GTIN travels only on the barcode lookup path
		if barcode != "" {
			recall.Barcode = barcode
			recall.GTIN = f.IdentificationDesProduits
		}

		if f.Distributeurs != "" {
			recall.Distributors = strings.Split(f.Distributeurs, ",")
		}
		if f.NumeroDeLot != "" {
			recall.BatchNumbers = strings.Split(f.NumeroDeLot, ",")
		}

		recalls = append(recalls, recall)
	}

	return recalls
}
