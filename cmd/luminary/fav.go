package main

import "fmt"

// Run executes the fav add command.
func (c *FavAddCmd) Run(deps *Dependencies) error {
	favorite, err := deps.Favorites.AddFavorite(deps.Ctx, c.Name)
	if err != nil {
		return errorMessage(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Added %q to favorites.\n", favorite.Name)
	return nil
}

// Run executes the fav remove command.
func (c *FavRemoveCmd) Run(deps *Dependencies) error {
	if err := deps.Favorites.RemoveFavorite(deps.Ctx, c.Name); err != nil {
		return errorMessage(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Removed %q from favorites.\n", c.Name)
	return nil
}

// Run executes the fav list command.
func (c *FavListCmd) Run(deps *Dependencies) error {
	favorites, err := deps.Favorites.ListFavorites(deps.Ctx)
	if err != nil {
		return errorMessage(deps, err)
	}

	if len(favorites) == 0 {
		fmt.Fprintln(deps.Stdout, "No favorites yet. Use 'luminary fav add' to add one.")
		return nil
	}

	for _, f := range favorites {
		fmt.Fprintln(deps.Stdout, f.Name)
	}

	return nil
}
