package rentello

// Wire shapes of the remote Rentello API. The remote owns these contracts;
// the gateway only reads and forwards them.

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

type UserRole struct {
	RoleID   int64  `json:"roleId"`
	RoleName string `json:"roleName"`
}

type User struct {
	UserID      int64     `json:"userId"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	IsActive    bool      `json:"isActive"`
	UserRole    *UserRole `json:"userRole,omitempty"`
	// Role is a plain role string some backend versions emit instead of userRole.
	Role string `json:"role,omitempty"`
}

type VehicleBrand struct {
	BrandID   int64  `json:"brandId"`
	BrandName string `json:"brandName"`
}

type VehicleModel struct {
	ModelID   int64        `json:"modelId"`
	ModelName string       `json:"modelName"`
	Year      int          `json:"year"`
	Brand     VehicleBrand `json:"brand"`
}

type VehicleStatus struct {
	StatusID           int64  `json:"statusId"`
	StatusName         string `json:"statusName"`
	IsAvailableForRent bool   `json:"isAvailableForRent"`
}

type Location struct {
	LocationID   int64  `json:"locationId"`
	LocationName string `json:"locationName"`
	Address      string `json:"address"`
}

type Vehicle struct {
	VehicleID           int64         `json:"vehicleId"`
	VehicleRegistration string        `json:"vehicleRegistration"`
	Mileage             int64         `json:"mileage"`
	DailyRentalRate     float64       `json:"dailyRentalRate"`
	VehicleDescription  string        `json:"vehicleDescription,omitempty"`
	Model               VehicleModel  `json:"model"`
	CurrentStatus       VehicleStatus `json:"currentStatus"`
	CurrentLocation     Location      `json:"currentLocation"`
}

// PricingBreakdown is the authoritative pricing response. Older backend
// versions omit the itemized fields and only report days and total.
type PricingBreakdown struct {
	BasePrice          float64 `json:"basePrice"`
	WeekendSurcharge   float64 `json:"weekendSurcharge"`
	SeasonalAdjustment float64 `json:"seasonalAdjustment"`
	DiscountAmount     float64 `json:"discountAmount"`
	TaxAmount          float64 `json:"taxAmount"`
	TotalPrice         float64 `json:"totalPrice"`
	TotalDays          int     `json:"totalDays"`
	AverageRate        float64 `json:"averageRate"`
}

type CreateRentalRequest struct {
	CustomerID        int64  `json:"customerId"`
	VehicleID         int64  `json:"vehicleId"`
	PickupLocationID  int64  `json:"pickupLocationId"`
	ReturnLocationID  int64  `json:"returnLocationId"`
	PlannedPickupDate string `json:"plannedPickupDate"`
	PlannedReturnDate string `json:"plannedReturnDate"`
	CreatedBy         int64  `json:"createdBy"`
}

// CreateRentalResult mirrors the stored-procedure response shape, PascalCase
// keys included.
type CreateRentalResult struct {
	IsSuccess    bool    `json:"IsSuccess"`
	RentalID     int64   `json:"RentalID"`
	TotalAmount  float64 `json:"TotalAmount"`
	ErrorMessage string  `json:"ErrorMessage"`
}

type RentalStatus struct {
	StatusID   int64  `json:"statusId"`
	StatusName string `json:"statusName"`
}

type Rental struct {
	RentalID          int64        `json:"rentalId"`
	PlannedPickupDate string       `json:"plannedPickupDate"`
	PlannedReturnDate string       `json:"plannedReturnDate"`
	TotalAmount       float64      `json:"totalAmount"`
	Notes             string       `json:"notes,omitempty"`
	RentalStatus      RentalStatus `json:"rentalStatus"`
	Vehicle           Vehicle      `json:"vehicle"`
	PickupLocation    Location     `json:"pickupLocation"`
	ReturnLocation    Location     `json:"returnLocation"`
}

type UpdateRentalStatusRequest struct {
	StatusID int `json:"statusId"`
}

// AdminUser is the flattened user row the back-office endpoints return,
// role and rental statistics included.
type AdminUser struct {
	UserID        int64  `json:"userId"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	PhoneNumber   string `json:"phoneNumber,omitempty"`
	IsActive      bool   `json:"isActive"`
	RoleID        int64  `json:"roleId"`
	RoleName      string `json:"roleName"`
	CityName      string `json:"cityName,omitempty"`
	TotalRentals  int64  `json:"totalRentals"`
	ActiveRentals int64  `json:"activeRentals"`
}

// UserPage is the Spring page envelope the admin listings come wrapped in.
type UserPage struct {
	Content       []AdminUser `json:"content"`
	TotalElements int64       `json:"totalElements"`
	TotalPages    int         `json:"totalPages"`
	Number        int         `json:"number"`
	Size          int         `json:"size"`
}

type Role struct {
	RoleID          int64  `json:"roleId"`
	RoleName        string `json:"roleName"`
	RoleDescription string `json:"roleDescription,omitempty"`
}

// AdminActionResult acknowledges an admin mutation. The flag is the
// authoritative outcome; a false with a message means the remote refused.
type AdminActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type DashboardStats struct {
	TotalUsers            int64   `json:"totalUsers"`
	TotalVehicles         int64   `json:"totalVehicles"`
	TotalRentals          int64   `json:"totalRentals"`
	ActiveRentals         int64   `json:"activeRentals"`
	TotalRevenue          float64 `json:"totalRevenue"`
	MonthlyRevenue        float64 `json:"monthlyRevenue"`
	AvailableVehicles     int64   `json:"availableVehicles"`
	RentedVehicles        int64   `json:"rentedVehicles"`
	MaintenanceVehicles   int64   `json:"maintenanceVehicles"`
	NewCustomersThisMonth int64   `json:"newCustomersThisMonth"`
}
