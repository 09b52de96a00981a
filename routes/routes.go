package routes

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/itousif38-netizen/SN-ENTP/handlers"
	"github.com/itousif38-netizen/SN-ENTP/middleware"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	// =====================================================
	// Public Routes (no authentication)
	// =====================================================
	r.HandleFunc("/login", handlers.Login).Methods("POST")
	r.HandleFunc("/health", handleHealthz).Methods("GET")

	// =====================================================
	// Protected API Routes (require JWT authentication)
	// =====================================================
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.JWTMiddleware)

	api.HandleFunc("/profile", handleProfile).Methods("GET")

	registerDataRoutes(api)
	registerLabourRoutes(api)
	registerSummaryRoutes(api)
	registerEstimatorRoutes(api)

	// =====================================================
	// Admin Routes (registration, backup restore)
	// =====================================================
	admin := api.PathPrefix("/admin").Subrouter()
	registerAdminRoutes(admin)

	return r
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleProfile returns the authenticated user's identity
func handleProfile(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	user := middleware.GetUser(r)

	response := map[string]interface{}{
		"userID": claims.UserID,
		"name":   user.Name,
		"phone":  user.Phone,
		"role":   user.Role,
	}
	json.NewEncoder(w).Encode(response)
}

// registerDataRoutes registers the core record-keeping resources
func registerDataRoutes(api *mux.Router) {
	// Projects
	registerCRUDRoutes(api, "/projects", crudHandlers{
		getAll: handlers.GetAllProjects,
		create: handlers.CreateProject,
		getOne: handlers.GetProject,
		update: handlers.UpdateProject,
		delete: handlers.DeleteProject,
	})

	// Workers
	registerCRUDRoutes(api, "/workers", crudHandlers{
		getAll: handlers.GetAllWorkers,
		create: handlers.CreateWorker,
		getOne: handlers.GetWorker,
		update: handlers.UpdateWorker,
		delete: handlers.DeleteWorker,
	})
	api.HandleFunc("/workers-next-id", handlers.NextWorkerBusinessID).Methods("GET")

	// Bills
	registerCRUDRoutes(api, "/bills", crudHandlers{
		getAll: handlers.GetAllBills,
		create: handlers.CreateBill,
		update: handlers.UpdateBill,
		delete: handlers.DeleteBill,
	})

	// Client Payments
	registerCRUDRoutes(api, "/client-payments", crudHandlers{
		getAll: handlers.GetAllClientPayments,
		create: handlers.CreateClientPayment,
		update: handlers.UpdateClientPayment,
		delete: handlers.DeleteClientPayment,
	})

	// Purchases
	registerCRUDRoutes(api, "/purchases", crudHandlers{
		getAll: handlers.GetAllPurchases,
		create: handlers.CreatePurchase,
		update: handlers.UpdatePurchase,
		delete: handlers.DeletePurchase,
	})

	// Stock consumption and balances
	api.HandleFunc("/consumption", handlers.GetConsumption).Methods("GET")
	api.HandleFunc("/consumption", handlers.CreateConsumption).Methods("POST")
	api.HandleFunc("/consumption/{id}", handlers.DeleteConsumption).Methods("DELETE")
	api.HandleFunc("/inventory", handlers.GetInventoryBalances).Methods("GET")

	// Execution levels
	registerCRUDRoutes(api, "/execution", crudHandlers{
		getAll: handlers.GetExecutionLevels,
		create: handlers.CreateExecutionLevel,
		update: handlers.UpdateExecutionLevel,
		delete: handlers.DeleteExecutionLevel,
	})

	// Mess
	registerCRUDRoutes(api, "/mess", crudHandlers{
		getAll: handlers.GetMessEntries,
		create: handlers.CreateMessEntry,
		update: handlers.UpdateMessEntry,
		delete: handlers.DeleteMessEntry,
	})
}

// registerLabourRoutes registers attendance, kharchi, advances and payroll
func registerLabourRoutes(api *mux.Router) {
	// Attendance (batch upsert)
	api.HandleFunc("/attendance", handlers.GetAttendance).Methods("GET")
	api.HandleFunc("/attendance", handlers.SaveAttendance).Methods("POST")

	// Kharchi (Sunday petty cash)
	api.HandleFunc("/kharchi", handlers.GetKharchi).Methods("GET")
	api.HandleFunc("/kharchi", handlers.SaveKharchi).Methods("POST")
	api.HandleFunc("/kharchi", handlers.DeleteKharchi).Methods("DELETE")
	api.HandleFunc("/kharchi/sundays", handlers.GetKharchiSundays).Methods("GET")
	api.HandleFunc("/kharchi/export/excel", handlers.ExportKharchiExcel).Methods("GET")

	// Advances
	registerCRUDRoutes(api, "/advances", crudHandlers{
		getAll: handlers.GetAllAdvances,
		create: handlers.CreateAdvance,
		update: handlers.UpdateAdvance,
		delete: handlers.DeleteAdvance,
	})

	// Payroll
	api.HandleFunc("/payroll/sheet", handlers.GetPayrollSheet).Methods("GET")
	api.HandleFunc("/payroll", handlers.SavePayroll).Methods("POST")
	api.HandleFunc("/payroll", handlers.GetWorkerPayments).Methods("GET")
	api.HandleFunc("/payroll/export/excel", handlers.ExportPayrollExcel).Methods("GET")
	api.HandleFunc("/payroll/export/csv", handlers.ExportPayrollCSV).Methods("GET")
}

// registerSummaryRoutes registers derived views and data management
func registerSummaryRoutes(api *mux.Router) {
	api.HandleFunc("/dashboard", handlers.GetDashboard).Methods("GET")
	api.HandleFunc("/summary/gst", handlers.GetGSTSummary).Methods("GET")
	api.HandleFunc("/summary/pl", handlers.GetProfitAndLoss).Methods("GET")

	api.HandleFunc("/backup/export", handlers.ExportBackup).Methods("GET")

	api.HandleFunc("/sync", handlers.GetSyncStatus).Methods("GET")
	api.HandleFunc("/sync", handlers.TriggerSync).Methods("POST")
}

// registerEstimatorRoutes registers the AI estimator proxy
func registerEstimatorRoutes(api *mux.Router) {
	api.HandleFunc("/estimator/generate", handlers.GenerateEstimate).Methods("POST")
	api.HandleFunc("/estimator/chat", handlers.EstimatorChat).Methods("POST")
}

// registerAdminRoutes registers admin-only routes
func registerAdminRoutes(admin *mux.Router) {
	adminOnly := []string{"admin"}

	admin.Handle("/register", middleware.RequireRole(adminOnly,
		http.HandlerFunc(handlers.Register))).Methods("POST")
	admin.Handle("/backup/import", middleware.RequireRole(adminOnly,
		http.HandlerFunc(handlers.ImportBackup))).Methods("POST")
}

// crudHandlers holds handlers for a CRUD resource
type crudHandlers struct {
	getAll func(http.ResponseWriter, *http.Request)
	create func(http.ResponseWriter, *http.Request)
	getOne func(http.ResponseWriter, *http.Request)
	update func(http.ResponseWriter, *http.Request)
	delete func(http.ResponseWriter, *http.Request)
}

// registerCRUDRoutes registers standard CRUD routes for a resource
func registerCRUDRoutes(router *mux.Router, path string, h crudHandlers) {
	router.HandleFunc(path, h.getAll).Methods("GET")
	router.HandleFunc(path, h.create).Methods("POST")
	if h.getOne != nil {
		router.HandleFunc(path+"/{id}", h.getOne).Methods("GET")
	}
	router.HandleFunc(path+"/{id}", h.update).Methods("PUT")
	router.HandleFunc(path+"/{id}", h.delete).Methods("DELETE")
}
