package view

import (
	"hotel-service/internal/dashboard"
	"hotel-service/internal/model"

	"github.com/labstack/echo/v4"
)

// DashboardProps renders a dashboard view model to the page props handed to
// the front end. Which layout the client shows follows from the shape alone;
// no role logic is re-derived here.
func DashboardProps(v dashboard.View) echo.Map {
	switch view := v.(type) {
	case dashboard.AdminOverview:
		return echo.Map{
			"isAdmin":       true,
			"hotels":        view.Hotels,
			"totalHotels":   view.TotalHotels,
			"totalRooms":    view.TotalRooms,
			"totalGuests":   view.TotalGuests,
			"totalBookings": view.TotalBookings,
			"totalManagers": view.TotalManagers,
		}
	case dashboard.TenantOverview:
		return echo.Map{
			"isAdmin":       false,
			"hotel":         view.Hotel,
			"guestCount":    view.Hotel.GuestsCount,
			"roomsCount":    view.Hotel.RoomsCount,
			"bookingsCount": view.Hotel.BookingsCount,
		}
	case dashboard.UnassignedNotice:
		return echo.Map{
			"isAdmin":       false,
			"isUnassigned":  true,
			"hotel":         nil,
			"guestCount":    0,
			"roomsCount":    0,
			"bookingsCount": 0,
			"message":       view.Message,
		}
	}
	return echo.Map{}
}

// HotelsProps renders the hotel management page props
func HotelsProps(hotels []model.Tenant) echo.Map {
	return echo.Map{
		"hotels": hotels,
	}
}
