package v1handler_test

import (
	"bytes"
	"context"
	"crypto/rsa"
	"foodgram/internal/api/handler/v1handler"
	mockcatalog "foodgram/internal/catalog/mock"
	"foodgram/internal/recipes"
	mockrecipes "foodgram/internal/recipes/mock"
	"foodgram/internal/users"
	mockusers "foodgram/internal/users/mock"
	"foodgram/pkg/domain"
	"foodgram/pkg/serrors"
	"foodgram/pkg/shoppinglist"
	"foodgram/pkg/shoppinglist/pdflist"
	"foodgram/pkg/shoppinglist/textlist"
	"foodgram/pkg/storage"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testAPI struct {
	catalog *mockcatalog.MockCatalog
	recipes *mockrecipes.MockRecipes
	users   *mockusers.MockUsers
	handler http.Handler

	priv   *rsa.PrivateKey
	userID domain.UserID
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)
	priv, pubPEM := genRSAKeys(t)
	pdf, err := pdflist.New(pdflist.Options{})
	require.NoError(t, err)

	api := &testAPI{
		catalog: mockcatalog.NewMockCatalog(ctrl),
		recipes: mockrecipes.NewMockRecipes(ctrl),
		users:   mockusers.NewMockUsers(ctrl),
		priv:    priv,
		userID:  domain.UserID(uuid.New()),
	}
	h := v1handler.New(v1handler.Deps{
		Catalog:   api.catalog,
		Recipes:   api.recipes,
		Users:     api.users,
		Renderers: []shoppinglist.Renderer{pdf, textlist.New()},
	}, v1handler.Options{})
	api.handler = h.Routes(newSecHandlerForTest(t, pubPEM))

	return api
}

func (a *testAPI) do(t *testing.T, method, target string, body string, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, r)
	if authenticated {
		now := time.Now()
		req.Header.Set("Authorization", "Bearer "+signJWTRS256(t, a.priv, a.userID.String(), now, now.Add(time.Hour)))
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return out
}

func sampleRecipe(id domain.RecipeID) *domain.Recipe {
	return &domain.Recipe{
		ID:          id,
		Author:      domain.User{ID: domain.UserID(uuid.New()), Username: "chef"},
		Name:        "Pancakes",
		Text:        "Mix and fry",
		Image:       "data:image/png;base64,iVBORw0KGgo=",
		CookingTime: 15,
		Ingredients: []domain.RecipeIngredient{
			{Ingredient: domain.Ingredient{ID: 1, Name: "flour", MeasurementUnit: "g"}, Amount: 200},
		},
		Tags: []domain.Tag{{ID: 1, Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"}},
	}
}

func TestCatalogRoutes(t *testing.T) {
	api := newTestAPI(t)

	api.catalog.EXPECT().Tags(gomock.Any()).Return([]domain.Tag{{ID: 1, Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"}}, nil)
	rec := api.do(t, http.MethodGet, "/tags/", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[{"id":1,"name":"Breakfast","color":"#E26C2D","slug":"breakfast"}]`, rec.Body.String())

	api.catalog.EXPECT().Tag(gomock.Any(), domain.TagID(7)).Return(nil, serrors.With(serrors.ErrNotFound, "tag not found"))
	rec = api.do(t, http.MethodGet, "/tags/7", "", false)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(t, http.MethodGet, "/tags/abc/", "", false)
	require.Equal(t, http.StatusNotFound, rec.Code)

	api.catalog.EXPECT().Ingredients(gomock.Any(), storage.IngredientFilter{NamePrefix: "sug", MeasurementUnit: "g"}).
		Return([]domain.Ingredient{{ID: 3, Name: "sugar", MeasurementUnit: "g"}}, nil)
	rec = api.do(t, http.MethodGet, "/ingredients/?name=sug&measurement_unit=g", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[{"id":3,"name":"sugar","measurement_unit":"g"}]`, rec.Body.String())

	api.catalog.EXPECT().Ingredient(gomock.Any(), domain.IngredientID(3)).
		Return(&domain.Ingredient{ID: 3, Name: "sugar", MeasurementUnit: "g"}, nil)
	rec = api.do(t, http.MethodGet, "/ingredients/3/", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestListRecipes(t *testing.T) {
	t.Run("pagination and filters", func(t *testing.T) {
		api := newTestAPI(t)

		api.recipes.EXPECT().List(gomock.Any(), api.userID, recipes.Filter{
			Tags:        []string{"a", "b"},
			IsFavorited: true,
		}, storage.Page{Offset: 2, Limit: 2}).Return(storage.RecipePage{
			Recipes: []domain.Recipe{*sampleRecipe(3), *sampleRecipe(2)},
			Count:   5,
		}, nil)

		rec := api.do(t, http.MethodGet, "/recipes/?page=2&limit=2&tags=a&tags=b&is_favorited=1", "", true)
		require.Equal(t, http.StatusOK, rec.Code)

		page := decode[v1handler.Paginated[v1handler.Recipe]](t, rec)
		require.EqualValues(t, 5, page.Count)
		require.Len(t, page.Results, 2)
		require.Equal(t, "flour", page.Results[0].Ingredients[0].Name)
		require.Equal(t, 200, page.Results[0].Ingredients[0].Amount)
		require.NotNil(t, page.Next)
		require.Equal(t, "http://example.com/recipes/?is_favorited=1&limit=2&page=3&tags=a&tags=b", *page.Next)
		require.NotNil(t, page.Previous)
		require.Equal(t, "http://example.com/recipes/?is_favorited=1&limit=2&tags=a&tags=b", *page.Previous)
	})

	t.Run("defaults", func(t *testing.T) {
		api := newTestAPI(t)

		api.recipes.EXPECT().List(gomock.Any(), domain.UserID{}, recipes.Filter{}, storage.Page{Offset: 0, Limit: 6}).
			Return(storage.RecipePage{}, nil)

		rec := api.do(t, http.MethodGet, "/recipes", "", false)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"count":0,"next":null,"previous":null,"results":[]}`, rec.Body.String())
	})

	t.Run("limit is capped", func(t *testing.T) {
		api := newTestAPI(t)

		api.recipes.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), storage.Page{Offset: 0, Limit: 100}).
			Return(storage.RecipePage{}, nil)

		rec := api.do(t, http.MethodGet, "/recipes/?limit=1000", "", false)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid flag", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(t, http.MethodGet, "/recipes/?is_in_shopping_cart=yes", "", false)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		res := decode[v1handler.ErrorResponse](t, rec)
		require.Contains(t, res.Fields, "is_in_shopping_cart")
	})

	t.Run("invalid page", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(t, http.MethodGet, "/recipes/?page=0", "", false)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("page past the end", func(t *testing.T) {
		api := newTestAPI(t)

		api.recipes.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), storage.Page{Offset: 12, Limit: 6}).
			Return(storage.RecipePage{Count: 3}, nil)

		rec := api.do(t, http.MethodGet, "/recipes/?page=3", "", false)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("author filter", func(t *testing.T) {
		api := newTestAPI(t)

		authorID := domain.UserID(uuid.New())
		api.recipes.EXPECT().List(gomock.Any(), gomock.Any(), recipes.Filter{AuthorID: &authorID}, gomock.Any()).
			Return(storage.RecipePage{}, nil)

		rec := api.do(t, http.MethodGet, "/recipes/?author="+authorID.String(), "", false)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = api.do(t, http.MethodGet, "/recipes/?author=42", "", false)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRecipeWrites(t *testing.T) {
	body := `{"name":"Pancakes","text":"Mix and fry","image":"data:image/png;base64,iVBORw0KGgo=",
		"cooking_time":15,"ingredients":[{"id":1,"amount":200}],"tags":[1]}`

	t.Run("anonymous create", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(t, http.MethodPost, "/recipes/", body, false)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("create", func(t *testing.T) {
		api := newTestAPI(t)

		api.recipes.EXPECT().Create(gomock.Any(), api.userID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.UserID, in recipes.Input) (*domain.Recipe, error) {
				require.Equal(t, "Pancakes", *in.Name)
				require.Equal(t, 15, *in.CookingTime)
				require.Equal(t, []recipes.IngredientAmount{{ID: 1, Amount: 200}}, in.Ingredients)
				require.Equal(t, []domain.TagID{1}, in.Tags)

				return sampleRecipe(9), nil
			})

		rec := api.do(t, http.MethodPost, "/recipes/", body, true)
		require.Equal(t, http.StatusCreated, rec.Code)
		res := decode[v1handler.Recipe](t, rec)
		require.EqualValues(t, 9, res.ID)
		require.Equal(t, "breakfast", res.Tags[0].Slug)
	})

	t.Run("malformed body", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(t, http.MethodPost, "/recipes/", `{"name":`, true)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validation error", func(t *testing.T) {
		api := newTestAPI(t)

		api.recipes.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, serrors.InvalidField("ingredients", "ingredient 5 does not exist"))

		rec := api.do(t, http.MethodPost, "/recipes/", body, true)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		res := decode[v1handler.ErrorResponse](t, rec)
		require.Equal(t, []string{"ingredient 5 does not exist"}, res.Fields["ingredients"])
	})

	t.Run("partial update", func(t *testing.T) {
		api := newTestAPI(t)

		api.recipes.EXPECT().Update(gomock.Any(), api.userID, domain.RecipeID(9), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.UserID, _ domain.RecipeID, in recipes.Input) (*domain.Recipe, error) {
				require.Nil(t, in.Name)
				require.Equal(t, 20, *in.CookingTime)

				return sampleRecipe(9), nil
			})

		rec := api.do(t, http.MethodPatch, "/recipes/9/",
			`{"cooking_time":20,"ingredients":[{"id":1,"amount":200}],"tags":[1]}`, true)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("forbidden update", func(t *testing.T) {
		api := newTestAPI(t)

		api.recipes.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, serrors.With(serrors.ErrForbidden, "only the author can change a recipe"))

		rec := api.do(t, http.MethodPut, "/recipes/9/", body, true)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		api := newTestAPI(t)

		api.recipes.EXPECT().Delete(gomock.Any(), api.userID, domain.RecipeID(9)).Return(nil)

		rec := api.do(t, http.MethodDelete, "/recipes/9/", "", true)
		require.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestCollectionRoutes(t *testing.T) {
	t.Run("favorite", func(t *testing.T) {
		api := newTestAPI(t)

		api.recipes.EXPECT().AddToCollection(gomock.Any(), domain.CollectionFavorites, api.userID, domain.RecipeID(4)).
			Return(sampleRecipe(4), nil)

		rec := api.do(t, http.MethodPost, "/recipes/4/favorite/", "", true)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.JSONEq(t,
			`{"id":4,"name":"Pancakes","image":"data:image/png;base64,iVBORw0KGgo=","cooking_time":15}`,
			rec.Body.String())
	})

	t.Run("already in cart", func(t *testing.T) {
		api := newTestAPI(t)

		api.recipes.EXPECT().AddToCollection(gomock.Any(), domain.CollectionShoppingCart, api.userID, domain.RecipeID(4)).
			Return(nil, serrors.With(serrors.ErrBadRequest, "recipe is already in shopping cart"))

		rec := api.do(t, http.MethodPost, "/recipes/4/shopping_cart/", "", true)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "recipe is already in shopping cart", decode[v1handler.ErrorResponse](t, rec).Message)
	})

	t.Run("remove", func(t *testing.T) {
		api := newTestAPI(t)

		api.recipes.EXPECT().RemoveFromCollection(gomock.Any(), domain.CollectionShoppingCart, api.userID, domain.RecipeID(4)).
			Return(nil)

		rec := api.do(t, http.MethodDelete, "/recipes/4/shopping_cart", "", true)
		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(t, http.MethodDelete, "/recipes/4/favorite/", "", false)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestDownloadShoppingCart(t *testing.T) {
	items := []domain.ShoppingListItem{
		{Name: "flour", MeasurementUnit: "g", Amount: 400},
		{Name: "milk", MeasurementUnit: "ml", Amount: 250},
	}

	t.Run("txt", func(t *testing.T) {
		api := newTestAPI(t)
		api.recipes.EXPECT().ShoppingList(gomock.Any(), api.userID).Return(items, nil)

		rec := api.do(t, http.MethodGet, "/recipes/download_shopping_cart/?format=txt", "", true)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
		require.Equal(t, `attachment; filename="shopping_list.txt"`, rec.Header().Get("Content-Disposition"))
		require.Equal(t, "flour g - 400\nmilk ml - 250\n", rec.Body.String())
	})

	t.Run("pdf by default", func(t *testing.T) {
		api := newTestAPI(t)
		api.recipes.EXPECT().ShoppingList(gomock.Any(), api.userID).Return(items, nil)

		rec := api.do(t, http.MethodGet, "/recipes/download_shopping_cart/", "", true)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		require.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
	})

	t.Run("unknown format", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(t, http.MethodGet, "/recipes/download_shopping_cart/?format=docx", "", true)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, []string{"must be one of: pdf, txt"}, decode[v1handler.ErrorResponse](t, rec).Fields["format"])
	})

	t.Run("anonymous", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(t, http.MethodGet, "/recipes/download_shopping_cart/", "", false)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUserRoutes(t *testing.T) {
	t.Run("me", func(t *testing.T) {
		api := newTestAPI(t)

		api.users.EXPECT().Get(gomock.Any(), api.userID, api.userID).
			Return(&domain.User{ID: api.userID, Email: "cook@example.com", Username: "cook"}, nil)

		rec := api.do(t, http.MethodGet, "/users/me/", "", true)
		require.Equal(t, http.StatusOK, rec.Code)
		res := decode[v1handler.User](t, rec)
		require.Equal(t, api.userID.String(), res.ID)
		require.False(t, res.IsSubscribed)
	})

	t.Run("me anonymous", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(t, http.MethodGet, "/users/me/", "", false)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		api := newTestAPI(t)

		api.users.EXPECT().List(gomock.Any(), domain.UserID{}, storage.Page{Offset: 0, Limit: 6}).
			Return(storage.UserPage{Users: []domain.User{{ID: api.userID, Username: "cook"}}, Count: 1}, nil)

		rec := api.do(t, http.MethodGet, "/users/", "", false)
		require.Equal(t, http.StatusOK, rec.Code)
		page := decode[v1handler.Paginated[v1handler.User]](t, rec)
		require.EqualValues(t, 1, page.Count)
		require.Nil(t, page.Next)
	})

	t.Run("get unknown", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(t, http.MethodGet, "/users/not-a-uuid/", "", false)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("subscriptions", func(t *testing.T) {
		api := newTestAPI(t)

		authorID := domain.UserID(uuid.New())
		api.users.EXPECT().Subscriptions(gomock.Any(), api.userID, storage.Page{Offset: 0, Limit: 6}, uint(2)).
			Return(users.SubscriptionPage{
				Subscriptions: []domain.Subscription{{
					Author:       domain.User{ID: authorID, Username: "chef", IsSubscribed: true},
					Recipes:      []domain.Recipe{*sampleRecipe(3)},
					RecipesCount: 7,
				}},
				Count: 1,
			}, nil)

		rec := api.do(t, http.MethodGet, "/users/subscriptions/?recipes_limit=2", "", true)
		require.Equal(t, http.StatusOK, rec.Code)
		page := decode[v1handler.Paginated[v1handler.Subscription]](t, rec)
		require.Len(t, page.Results, 1)
		require.True(t, page.Results[0].IsSubscribed)
		require.Equal(t, 7, page.Results[0].RecipesCount)
		require.Len(t, page.Results[0].Recipes, 1)
	})

	t.Run("subscribe", func(t *testing.T) {
		api := newTestAPI(t)

		authorID := domain.UserID(uuid.New())
		api.users.EXPECT().Subscribe(gomock.Any(), api.userID, authorID, uint(0)).
			Return(&domain.Subscription{Author: domain.User{ID: authorID, IsSubscribed: true}, Recipes: []domain.Recipe{}}, nil)

		rec := api.do(t, http.MethodPost, "/users/"+authorID.String()+"/subscribe/", "", true)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Contains(t, rec.Body.String(), `"recipes":[]`)
	})

	t.Run("subscribe invalid limit", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(t, http.MethodPost, "/users/"+uuid.NewString()+"/subscribe/?recipes_limit=-1", "", true)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unsubscribe not subscribed", func(t *testing.T) {
		api := newTestAPI(t)

		authorID := domain.UserID(uuid.New())
		api.users.EXPECT().Unsubscribe(gomock.Any(), api.userID, authorID).
			Return(serrors.With(serrors.ErrBadRequest, "you are not subscribed to this author"))

		rec := api.do(t, http.MethodDelete, "/users/"+authorID.String()+"/subscribe/", "", true)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
