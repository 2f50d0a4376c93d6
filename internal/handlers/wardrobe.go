package handlers

import (
	"net/http"
	"strconv"

	"wardrobe_catalog/internal/service"

	"github.com/gin-gonic/gin"
)

// Request DTOs.
type categoryRequest struct {
	Category string `json:"category" example:"Shirts"`
}

// ClothRequest is the body of add/update cloth calls.
type ClothRequest struct {
	// Target category; optional on update
	Category string `json:"category" example:"Shirts"`
	Name     string `json:"name" example:"Tee"`
	// Opaque image reference, stored as given
	Image  string `json:"image,omitempty" example:"https://example.com/tee.png"`
	Color  string `json:"color" example:"blue"`
	Season string `json:"season" example:"Summer"`
}

func (r ClothRequest) input() service.ClothInput {
	return service.ClothInput{
		Category: r.Category,
		Name:     r.Name,
		Image:    r.Image,
		Color:    r.Color,
		Season:   r.Season,
	}
}

// clothID parses :id. ok is false for anything that is not an integer.
func clothID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil
}

// @Summary      User categories
// @Tags         wardrobe
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string][]string
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /api/wardrobe/categories [get]
func (h *Handler) listUserCategories(c *gin.Context) {
	categories, err := h.services.Categories(c.Request.Context(), callerID(c))
	if err != nil {
		h.fail(c, err, msgServerError, "wardrobe_categories_failed", "user_id", callerID(c))
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// @Summary      Add user category
// @Tags         wardrobe
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      categoryRequest  true  "Category"
// @Success      200   {object}  map[string]interface{}  "message, categories"
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /api/wardrobe/categories [post]
func (h *Handler) addUserCategory(c *gin.Context) {
	var req categoryRequest
	if ok := h.bindJSONOrBadRequest(c, &req, msgCategoryRequired); !ok {
		return
	}

	categories, err := h.services.AddCategory(c.Request.Context(), callerID(c), req.Category)
	if err != nil {
		h.fail(c, err, msgCategoryRequired, "wardrobe_add_category_failed", "user_id", callerID(c))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    msgCategoryAdded,
		"categories": categories,
	})
}

// @Summary      List clothes of a category
// @Tags         wardrobe
// @Produce      json
// @Security     BearerAuth
// @Param        category  path      string  true   "Category"
// @Param        season    query     string  false  "Season filter; 'all' or empty disables it"
// @Success      200       {object}  map[string]interface{}  "clothes"
// @Failure      401       {object}  messageResponse
// @Failure      403       {object}  messageResponse
// @Router       /api/wardrobe/clothes/{category} [get]
func (h *Handler) listClothes(c *gin.Context) {
	clothes, err := h.services.Clothes(c.Request.Context(), callerID(c), c.Param("category"), c.Query("season"))
	if err != nil {
		h.fail(c, err, msgServerError, "wardrobe_list_clothes_failed", "user_id", callerID(c))
		return
	}
	c.JSON(http.StatusOK, gin.H{"clothes": clothes})
}

// @Summary      Add cloth
// @Tags         wardrobe
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ClothRequest  true  "Cloth"
// @Success      201   {object}  map[string]interface{}  "message, cloth"
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /api/wardrobe/clothes [post]
func (h *Handler) addCloth(c *gin.Context) {
	var req ClothRequest
	if ok := h.bindJSONOrBadRequest(c, &req, msgFieldsRequired); !ok {
		return
	}

	cloth, err := h.services.AddCloth(c.Request.Context(), callerID(c), req.input())
	if err != nil {
		h.fail(c, err, msgFieldsRequired, "wardrobe_add_cloth_failed", "user_id", callerID(c))
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": msgClothAdded,
		"cloth":   cloth,
	})
}

// @Summary      Update cloth
// @Description  Replaces every field; a missing body clears them. An empty category keeps the item where it is.
// @Tags         wardrobe
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int           true  "Cloth id"
// @Param        body  body      ClothRequest  false "Replacement fields"
// @Success      200   {object}  map[string]interface{}  "message, cloth"
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/wardrobe/clothes/{id} [put]
func (h *Handler) updateCloth(c *gin.Context) {
	var req ClothRequest
	if ok := h.bindOptionalJSON(c, &req, msgFieldsRequired); !ok {
		return
	}
	id, ok := clothID(c)
	if !ok {
		h.message(c, http.StatusNotFound, msgClothNotFound)
		return
	}

	cloth, err := h.services.UpdateCloth(c.Request.Context(), callerID(c), id, req.input())
	if err != nil {
		h.fail(c, err, msgFieldsRequired, "wardrobe_update_failed", "user_id", callerID(c), "cloth_id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": msgClothUpdated,
		"cloth":   cloth,
	})
}

// @Summary      Delete cloth
// @Tags         wardrobe
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Cloth id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/wardrobe/clothes/{id} [delete]
func (h *Handler) deleteCloth(c *gin.Context) {
	id, ok := clothID(c)
	if !ok {
		h.message(c, http.StatusNotFound, msgClothNotFound)
		return
	}

	if err := h.services.DeleteCloth(c.Request.Context(), callerID(c), id); err != nil {
		h.fail(c, err, msgServerError, "wardrobe_delete_failed", "user_id", callerID(c), "cloth_id", id)
		return
	}
	h.message(c, http.StatusOK, msgClothDeleted)
}
