package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemPayload struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	UserID     int64    `json:"user_id"`
	CategoryID int64    `json:"category_id"`
	ImageURL   string   `json:"image_url"`
	Tags       []string `json:"tags"`
	Creators   []string `json:"creators"`
}

func TestCreateItem(t *testing.T) {
	e := newTestEnv(t)
	jack := e.createUser(t, "jack")
	games := e.createCategory(t, jack, "Game")

	rec := e.do(t, http.MethodPost, "/items", map[string]any{
		"title":       "The Witcher 3",
		"user_id":     jack,
		"category_id": games,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var item itemPayload
	decodeData(t, rec, &item)
	assert.Equal(t, "The Witcher 3", item.Title)
	assert.NotNil(t, item.Tags)
	assert.NotNil(t, item.Creators)
}

func TestCreateItem_MissingFields(t *testing.T) {
	e := newTestEnv(t)

	rec := e.do(t, http.MethodPost, "/items", map[string]any{"title": "Dune"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Errors)
}

func TestCreateItem_UnknownReferences(t *testing.T) {
	e := newTestEnv(t)
	jack := e.createUser(t, "jack")
	games := e.createCategory(t, jack, "Game")

	rec := e.do(t, http.MethodPost, "/items", map[string]any{
		"title": "Dune", "user_id": 999, "category_id": games,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeEnvelope(t, rec).Errors, "User does not exist")

	rec = e.do(t, http.MethodPost, "/items", map[string]any{
		"title": "Dune", "user_id": jack, "category_id": 999,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeEnvelope(t, rec).Errors, "Category does not exist")
}

func TestGetItem_NotFound(t *testing.T) {
	e := newTestEnv(t)

	rec := e.do(t, http.MethodGet, "/items/42", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decodeEnvelope(t, rec).Errors, "Item with id 42 not found")
}

func TestUpdateItem(t *testing.T) {
	e := newTestEnv(t)
	jack := e.createUser(t, "jack")
	games := e.createCategory(t, jack, "Game")
	item := e.createItem(t, jack, games, "Dune")

	rec := e.do(t, http.MethodPatch, itemPath(item, ""), map[string]any{
		"title": "Dune Messiah",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated itemPayload
	decodeData(t, rec, &updated)
	assert.Equal(t, "Dune Messiah", updated.Title)

	// Empty title is rejected.
	rec = e.do(t, http.MethodPatch, itemPath(item, ""), map[string]any{"title": ""})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeEnvelope(t, rec).Errors, "Title cannot be empty")
}

func TestDeleteItem(t *testing.T) {
	e := newTestEnv(t)
	jack := e.createUser(t, "jack")
	games := e.createCategory(t, jack, "Game")
	item := e.createItem(t, jack, games, "Dune")

	rec := e.do(t, http.MethodDelete, itemPath(item, ""), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "deleted successfully")

	rec = e.do(t, http.MethodGet, itemPath(item, ""), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSyncItemTags(t *testing.T) {
	e := newTestEnv(t)
	jack := e.createUser(t, "jack")
	games := e.createCategory(t, jack, "Game")
	item := e.createItem(t, jack, games, "The Witcher 3")
	rpg := e.createTag(t, "RPG")
	fantasy := e.createTag(t, "Fantasy")

	rec := e.do(t, http.MethodPost, itemPath(item, "/tags"), map[string]any{
		"tag_ids": []int64{rpg, fantasy},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var detail itemPayload
	decodeData(t, rec, &detail)
	assert.Equal(t, []string{"RPG", "Fantasy"}, detail.Tags)

	// Replace with a smaller set.
	rec = e.do(t, http.MethodPost, itemPath(item, "/tags"), map[string]any{
		"tag_ids": []int64{fantasy},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &detail)
	assert.Equal(t, []string{"Fantasy"}, detail.Tags)
}

func TestSyncItemTags_Failures(t *testing.T) {
	e := newTestEnv(t)
	jack := e.createUser(t, "jack")
	games := e.createCategory(t, jack, "Game")
	item := e.createItem(t, jack, games, "The Witcher 3")
	rpg := e.createTag(t, "RPG")

	rec := e.do(t, http.MethodPost, itemPath(item, "/tags"), map[string]any{
		"tag_ids": []int64{},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeEnvelope(t, rec).Errors, "tag_ids must be a non-empty list")

	rec = e.do(t, http.MethodPost, itemPath(item, "/tags"), map[string]any{
		"tag_ids": []int64{rpg, 999},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeEnvelope(t, rec).Errors, "One or more tag_ids do not exist")

	rec = e.do(t, http.MethodPost, "/items/999/tags", map[string]any{
		"tag_ids": []int64{rpg},
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decodeEnvelope(t, rec).Errors, "Item with id 999 not found")
}

func TestSyncItemCreators(t *testing.T) {
	e := newTestEnv(t)
	jack := e.createUser(t, "jack")
	games := e.createCategory(t, jack, "Game")
	item := e.createItem(t, jack, games, "The Witcher 3")
	cdpr := e.createCreator(t, "CD Projekt Red")

	rec := e.do(t, http.MethodPost, itemPath(item, "/creators"), map[string]any{
		"creator_ids": []int64{cdpr},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var detail itemPayload
	decodeData(t, rec, &detail)
	assert.Equal(t, []string{"CD Projekt Red"}, detail.Creators)

	rec = e.do(t, http.MethodPost, itemPath(item, "/creators"), map[string]any{
		"creator_ids": []int64{},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeEnvelope(t, rec).Errors, "creator_ids must be a non-empty list")
}

func TestListItems_EmbedsNameLists(t *testing.T) {
	e := newTestEnv(t)
	jack := e.createUser(t, "jack")
	games := e.createCategory(t, jack, "Game")
	item := e.createItem(t, jack, games, "The Witcher 3")
	rpg := e.createTag(t, "RPG")

	rec := e.do(t, http.MethodPost, itemPath(item, "/tags"), map[string]any{
		"tag_ids": []int64{rpg},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = e.do(t, http.MethodGet, "/items", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []itemPayload
	decodeData(t, rec, &items)
	require.Len(t, items, 1)
	assert.Equal(t, []string{"RPG"}, items[0].Tags)
}
