package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"loopcart/catalog"
	"loopcart/utils"
)

// CatalogController serves the read-only product catalog.
type CatalogController struct {
	Catalog *catalog.Reader
}

// NewCatalogController creates a new CatalogController.
func NewCatalogController(reader *catalog.Reader) *CatalogController {
	return &CatalogController{Catalog: reader}
}

// GetProducts returns the full catalog.
func (cc *CatalogController) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := cc.Catalog.All()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Could not load products")
		return
	}
	utils.RespondJSON(w, http.StatusOK, products)
}

// GetProductByID returns a single product.
func (cc *CatalogController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := cc.Catalog.GetByID(id)
	if err != nil {
		if err == catalog.ErrNotFound {
			utils.RespondError(w, http.StatusNotFound, "Product not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Could not load product")
		return
	}
	utils.RespondJSON(w, http.StatusOK, product)
}

// Search returns products matching the q query parameter. An empty query
// returns everything.
func (cc *CatalogController) Search(w http.ResponseWriter, r *http.Request) {
	results, err := cc.Catalog.Search(r.URL.Query().Get("q"))
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Search failed")
		return
	}
	utils.RespondJSON(w, http.StatusOK, results)
}
