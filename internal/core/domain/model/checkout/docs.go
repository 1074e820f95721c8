// Package checkout models the checkout flow: the ordered steps a shopper
// goes through, the navigation between them and the flow-wide settings
// (express checkout, guest checkout, default delivery mode preferences).
package checkout
