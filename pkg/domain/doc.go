// Package domain contains the core domain entities of the recipe-sharing
// service: users and their subscriptions, the tag and ingredient catalog,
// recipes, and the per-user favorites and shopping cart collections. These
// types are free of infrastructure concerns so they can be shared by the
// storage, service and API layers.
package domain
