// Package router contains routing for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"cakehaven/internal/delivery/http/middleware"
	"cakehaven/internal/delivery/http/router/handler"
	"cakehaven/internal/domain/entity"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CustomerHandler *handler.CustomerHandler
	ShopHandler     *handler.ShopHandler
	EnquiryHandler  *handler.EnquiryHandler
	CakeHandler     *handler.CakeHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	auth       *handler.AuthHandler
	customers  *handler.CustomerHandler
	shops      *handler.ShopHandler
	enquiries  *handler.EnquiryHandler
	cakes      *handler.CakeHandler
	cart       *handler.CartHandler
	orders     *handler.OrderHandler
	middleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:       params.AuthHandler,
		customers:  params.CustomerHandler,
		shops:      params.ShopHandler,
		enquiries:  params.EnquiryHandler,
		cakes:      params.CakeHandler,
		cart:       params.CartHandler,
		orders:     params.OrderHandler,
		middleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	authenticate := r.middleware.Authenticate
	customer := r.middleware.RequireRole(entity.RoleCustomer)
	shopAdmin := r.middleware.RequireRole(entity.RoleShopAdmin)
	superAdmin := r.middleware.RequireRole(entity.RoleSuperAdmin)
	admins := r.middleware.RequireRole(entity.RoleShopAdmin, entity.RoleSuperAdmin)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.auth.Signup)
		authGroup.POST("/signin", r.auth.Signin)
		authGroup.POST("/forgotPassword", r.auth.ForgotPassword)
		authGroup.POST("/resetPassword", r.auth.ResetPassword)
		authGroup.POST("/logout", r.auth.Logout, authenticate)
		authGroup.GET("/me", r.auth.Me, authenticate)
	}

	// Self-or-admin checks for single profiles live in the ownership policy.
	customerGroup := api.Group("/customers", authenticate)
	{
		customerGroup.POST("/createCustomer", r.customers.CreateCustomer, customer)
		customerGroup.GET("/me", r.customers.GetMyProfile, customer)
		customerGroup.GET("/getCustomer/:id", r.customers.GetCustomer)
		customerGroup.PATCH("/updateCustomer/:id", r.customers.UpdateCustomer)
		customerGroup.GET("/getAllCustomers", r.customers.GetAllCustomers, admins)
		customerGroup.PATCH("/toggleCustomerStatus/:id", r.customers.ToggleCustomerStatus, admins)
	}

	cakeGroup := api.Group("/cakes", authenticate)
	{
		cakeGroup.GET("/getAllCakes", r.cakes.GetAllCakes)
		cakeGroup.GET("/getCake/:id", r.cakes.GetCake)
		cakeGroup.POST("/createCake", r.cakes.CreateCake, shopAdmin)
		cakeGroup.POST("/uploadImage", r.cakes.UploadImage, shopAdmin)
		cakeGroup.PATCH("/updateCake/:id", r.cakes.UpdateCake, shopAdmin)
		cakeGroup.PATCH("/toggleCakeStatus/:id", r.cakes.ToggleCakeStatus, shopAdmin)
		cakeGroup.DELETE("/deleteCake/:id", r.cakes.DeleteCake, shopAdmin)
	}

	cartGroup := api.Group("/cart", authenticate, customer)
	{
		cartGroup.POST("/addToCart", r.cart.AddToCart)
		cartGroup.GET("/getCart", r.cart.GetCart)
		cartGroup.PATCH("/updateCartItem/:id", r.cart.UpdateCartItem)
		cartGroup.DELETE("/removeCartItem/:id", r.cart.RemoveCartItem)
		cartGroup.DELETE("/clearCart", r.cart.ClearCart)
	}

	enquiryGroup := api.Group("/enquiry")
	{
		enquiryGroup.POST("/createEnquiry", r.enquiries.CreateEnquiry)

		enquiryGroup.GET("/getEnquiries", r.enquiries.GetEnquiries, authenticate, superAdmin)
		enquiryGroup.GET("/getEnquiry/:id", r.enquiries.GetEnquiry, authenticate, superAdmin)
		enquiryGroup.PATCH("/approveEnquiry/:id", r.enquiries.ApproveEnquiry, authenticate, superAdmin)
		enquiryGroup.PATCH("/rejectEnquiry/:id", r.enquiries.RejectEnquiry, authenticate, superAdmin)
	}

	orderGroup := api.Group("/orders", authenticate)
	{
		orderGroup.POST("/createOrder", r.orders.CreateOrder, customer)
		orderGroup.GET("/getMyOrders", r.orders.GetMyOrders, customer)
		orderGroup.PATCH("/cancelOrder/:id", r.orders.CancelOrder, customer)
		orderGroup.GET("/getOrder/:id", r.orders.GetOrder)
		orderGroup.GET("/getOrderQR/:id", r.orders.GetOrderQR)
		orderGroup.GET("/getAllOrders", r.orders.GetAllOrders, superAdmin)
		orderGroup.PATCH("/updateOrderStatus/:id", r.orders.UpdateOrderStatus, superAdmin)
		orderGroup.GET("/getShopOrders", r.orders.GetShopOrders, shopAdmin)
	}

	shopGroup := api.Group("/shops", authenticate, superAdmin)
	{
		shopGroup.GET("/getAllShops", r.shops.GetAllShops)
		shopGroup.GET("/getShop/:id", r.shops.GetShop)
		shopGroup.PATCH("/toggleShopStatus/:id", r.shops.ToggleShopStatus)
	}
}
