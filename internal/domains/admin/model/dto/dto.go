package dto

import (
	"strings"

	"rentello/infras/rentello"
	"rentello/internal/domains/access"
	"rentello/shared/money"
)

type ListUsersRequest struct {
	Page          int    `validate:"gte=0"`
	Size          int    `validate:"gte=1,lte=100"`
	SortBy        string `validate:"omitempty,oneof=createdDate username email lastLoginDate"`
	SortDirection string `validate:"omitempty,oneof=asc desc"`
	SearchTerm    string `validate:"omitempty,max=100"`
}

type UpdateRoleRequest struct {
	RoleID int64 `json:"role_id" validate:"required,gt=0"`
}

type UserResponse struct {
	UserID        int64  `json:"user_id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	DisplayName   string `json:"display_name"`
	PhoneNumber   string `json:"phone_number,omitempty"`
	IsActive      bool   `json:"is_active"`
	RoleID        int64  `json:"role_id"`
	RoleName      string `json:"role_name"`
	Role          string `json:"role"`
	CityName      string `json:"city_name,omitempty"`
	TotalRentals  int64  `json:"total_rentals"`
	ActiveRentals int64  `json:"active_rentals"`
}

func (r *UserResponse) FromRemote(user rentello.AdminUser) {
	r.UserID = user.UserID
	r.Username = user.Username
	r.Email = user.Email
	r.DisplayName = strings.TrimSpace(user.FirstName + " " + user.LastName)
	if r.DisplayName == "" {
		r.DisplayName = user.Username
	}
	r.PhoneNumber = user.PhoneNumber
	r.IsActive = user.IsActive
	r.RoleID = user.RoleID
	r.RoleName = user.RoleName
	r.Role = access.Canonical(user.RoleName)
	r.CityName = user.CityName
	r.TotalRentals = user.TotalRentals
	r.ActiveRentals = user.ActiveRentals
}

type UserPageResponse struct {
	Users         []UserResponse `json:"users"`
	Page          int            `json:"page"`
	TotalPages    int            `json:"total_pages"`
	TotalElements int64          `json:"total_elements"`
}

func (r *UserPageResponse) FromRemote(page rentello.UserPage) {
	r.Users = make([]UserResponse, 0, len(page.Content))
	for _, user := range page.Content {
		var item UserResponse
		item.FromRemote(user)
		r.Users = append(r.Users, item)
	}

	r.Page = page.Number
	r.TotalPages = page.TotalPages
	r.TotalElements = page.TotalElements
}

type RoleResponse struct {
	RoleID      int64  `json:"role_id"`
	RoleName    string `json:"role_name"`
	Role        string `json:"role"`
	Description string `json:"description,omitempty"`
}

func (r *RoleResponse) FromRemote(role rentello.Role) {
	r.RoleID = role.RoleID
	r.RoleName = role.RoleName
	r.Role = access.Canonical(role.RoleName)
	r.Description = role.RoleDescription
}

// ActionResponse relays the remote's acknowledgement of an admin mutation.
type ActionResponse struct {
	Message string `json:"message"`
}

type StatsResponse struct {
	TotalUsers            int64  `json:"total_users"`
	TotalVehicles         int64  `json:"total_vehicles"`
	TotalRentals          int64  `json:"total_rentals"`
	ActiveRentals         int64  `json:"active_rentals"`
	TotalRevenue          string `json:"total_revenue"`
	MonthlyRevenue        string `json:"monthly_revenue"`
	AvailableVehicles     int64  `json:"available_vehicles"`
	RentedVehicles        int64  `json:"rented_vehicles"`
	MaintenanceVehicles   int64  `json:"maintenance_vehicles"`
	NewCustomersThisMonth int64  `json:"new_customers_this_month"`
}

func (r *StatsResponse) FromRemote(stats rentello.DashboardStats) {
	r.TotalUsers = stats.TotalUsers
	r.TotalVehicles = stats.TotalVehicles
	r.TotalRentals = stats.TotalRentals
	r.ActiveRentals = stats.ActiveRentals
	r.TotalRevenue = money.FormatPrice(stats.TotalRevenue)
	r.MonthlyRevenue = money.FormatPrice(stats.MonthlyRevenue)
	r.AvailableVehicles = stats.AvailableVehicles
	r.RentedVehicles = stats.RentedVehicles
	r.MaintenanceVehicles = stats.MaintenanceVehicles
	r.NewCustomersThisMonth = stats.NewCustomersThisMonth
}
