package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/fsdevblog/bankoffice/internal/service"
	"github.com/gin-gonic/gin"
)

type UsersHandler struct {
	userService    UserServicer
	accountService AccountServicer
}

func NewUsersHandler(userService UserServicer, accountService AccountServicer) *UsersHandler {
	return &UsersHandler{
		userService:    userService,
		accountService: accountService,
	}
}

type CreateUserParams struct {
	Username  string `binding:"required,min=1,max=150"         json:"username"`
	Password  string `binding:"required,min=4,max_bytes=128"   json:"password"`
	Email     string `binding:"omitempty,email,max_bytes=254"  json:"email"`
	FirstName string `binding:"max=150"                        json:"first_name"`
	LastName  string `binding:"max=150"                        json:"last_name"`
	Phone     string `binding:"max=15"                         json:"phone"`
	Address   string `binding:"max_bytes=2000"                 json:"address"`
}

func (p CreateUserParams) args() service.CreateUserArgs {
	return service.CreateUserArgs{
		Username:  p.Username,
		Password:  p.Password,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone,
		Address:   p.Address,
	}
}

// abortOnCreateUserError занятый логин отдается как 409 с понятным сообщением.
func abortOnCreateUserError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrDuplicateKey) {
		_ = c.AbortWithError(http.StatusConflict, errors.New("A user with that username already exists.")).
			SetType(gin.ErrorTypePublic)
		return
	}
	abortWithServiceError(c, err, "User not found.")
}

// CreateManager POST RouteGroup + ManagersRoute.
func (h *UsersHandler) CreateManager(c *gin.Context) {
	var params CreateUserParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userService.CreateManager(ctx, getActorFromContext(c), params.args())
	if err != nil {
		abortOnCreateUserError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newUserResponse(user))
}

// ListManagers GET RouteGroup + ManagersRoute.
func (h *UsersHandler) ListManagers(c *gin.Context) {
	h.list(c, h.userService.ListManagers)
}

// CreateCustomer POST RouteGroup + CustomersRoute. Вместе с клиентом открывается сберегательный счет.
func (h *UsersHandler) CreateCustomer(c *gin.Context) {
	var params CreateUserParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, account, err := h.userService.CreateCustomer(ctx, getActorFromContext(c), params.args())
	if err != nil {
		abortOnCreateUserError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CustomerCreatedResponse{
		UserResponse: newUserResponse(user),
		Account:      newAccountResponse(account),
	})
}

// ListCustomers GET RouteGroup + CustomersRoute. Клиенты текущего менеджера.
func (h *UsersHandler) ListCustomers(c *gin.Context) {
	h.list(c, h.userService.ListCustomers)
}

// ListAllCustomers GET RouteGroup + AllCustomersRoute.
func (h *UsersHandler) ListAllCustomers(c *gin.Context) {
	h.list(c, h.userService.ListAllCustomers)
}

// CustomerAccounts GET RouteGroup + CustomerAccountsRoute. Счета клиента текущего менеджера.
func (h *UsersHandler) CustomerAccounts(c *gin.Context) {
	var uri struct {
		ID int64 `binding:"required,gt=0" uri:"id"`
	}
	if bindErr := c.ShouldBindUri(&uri); bindErr != nil {
		_ = c.AbortWithError(http.StatusNotFound, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	accounts, err := h.accountService.ListCustomerAccounts(ctx, getActorFromContext(c), uri.ID)
	if err != nil {
		abortWithServiceError(c, err, "Customer not found or not assigned to you.")
		return
	}
	c.JSON(http.StatusOK, newAccountsResponse(accounts))
}

func (h *UsersHandler) list(c *gin.Context, fn func(context.Context, domain.Actor) ([]domain.User, error)) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	users, err := fn(ctx, getActorFromContext(c))
	if err != nil {
		abortWithServiceError(c, err, "User not found.")
		return
	}
	c.JSON(http.StatusOK, newUsersResponse(users))
}
