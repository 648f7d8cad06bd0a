package api

import (
	"encoding/json"
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/geo-server/api/model"
	"github.com/a-bouts/geo-server/latlon"
	"github.com/gorilla/mux"
)

type server struct {
	stats *Stats
}

func InitServer(stats *Stats) *mux.Router {

	router := mux.NewRouter().StrictSlash(true)

	s := server{stats: stats}

	router.HandleFunc("/geo/-/healthz", s.healthz).Methods(http.MethodGet)

	apiV1 := router.PathPrefix("/geo/api/v1").Subrouter()
	apiV1.Use(s.count)
	apiV1.HandleFunc("/distance/{lat1}/{lon1}/{lat2}/{lon2}", s.distance).Methods(http.MethodGet)
	apiV1.HandleFunc("/bearing/{lat1}/{lon1}/{lat2}/{lon2}", s.bearing).Methods(http.MethodGet)
	apiV1.HandleFunc("/bearing/final/{lat1}/{lon1}/{lat2}/{lon2}", s.finalBearing).Methods(http.MethodGet)
	apiV1.HandleFunc("/midpoint/{lat1}/{lon1}/{lat2}/{lon2}", s.midpoint).Methods(http.MethodGet)
	apiV1.HandleFunc("/midpoint/rhumb/{lat1}/{lon1}/{lat2}/{lon2}", s.rhumbMidpoint).Methods(http.MethodGet)
	apiV1.HandleFunc("/destination/{lat}/{lon}/{bearing}/{distance}", s.destination).Methods(http.MethodGet)
	apiV1.HandleFunc("/intersection/{lat1}/{lon1}/{bearing1}/{lat2}/{lon2}/{bearing2}", s.intersection).Methods(http.MethodGet)

	return router
}

func (s *server) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				s.stats.Inc(tpl)
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (s *server) healthz(w http.ResponseWriter, r *http.Request) {
	type health struct {
		Status string `json:"status"`
	}

	json.NewEncoder(w).Encode(health{Status: "Ok"})
}

func (s *server) distance(w http.ResponseWriter, r *http.Request) {
	from, to, err := twoPoints(r)
	if err != nil {
		badRequest(w, r, err)
		return
	}

	method := r.URL.Query().Get("method")
	c, err := latlon.CalculatorFor(method)
	if err != nil {
		badRequest(w, r, err)
		return
	}

	d, err := c.DistanceTo(from, to)
	if err != nil {
		badRequest(w, r, err)
		return
	}

	requestLogger(r).Debugf("Distance %s -> %s : %.3f km", from, to, d)

	reply(w, model.Distance{Method: methodName(c), Distance: d})
}

func (s *server) bearing(w http.ResponseWriter, r *http.Request) {
	from, to, err := twoPoints(r)
	if err != nil {
		badRequest(w, r, err)
		return
	}

	c, err := latlon.CalculatorFor(r.URL.Query().Get("method"))
	if err != nil {
		badRequest(w, r, err)
		return
	}

	b, err := c.BearingTo(from, to)
	if err != nil {
		badRequest(w, r, err)
		return
	}

	reply(w, model.Bearing{Method: methodName(c), Bearing: b})
}

func (s *server) finalBearing(w http.ResponseWriter, r *http.Request) {
	from, to, err := twoPoints(r)
	if err != nil {
		badRequest(w, r, err)
		return
	}

	b, err := latlon.FinalBearing(from, to)
	if err != nil {
		badRequest(w, r, err)
		return
	}

	reply(w, model.Bearing{Method: "final", Bearing: b})
}

func (s *server) midpoint(w http.ResponseWriter, r *http.Request) {
	from, to, err := twoPoints(r)
	if err != nil {
		badRequest(w, r, err)
		return
	}

	m, err := latlon.Midpoint(from, to)
	if err != nil {
		badRequest(w, r, err)
		return
	}

	reply(w, m)
}

func (s *server) rhumbMidpoint(w http.ResponseWriter, r *http.Request) {
	from, to, err := twoPoints(r)
	if err != nil {
		badRequest(w, r, err)
		return
	}

	m, err := latlon.RhumbMidpoint(from, to)
	if err != nil {
		badRequest(w, r, err)
		return
	}

	reply(w, m)
}

func (s *server) destination(w http.ResponseWriter, r *http.Request) {
	v, err := floatVars(r, "lat", "lon", "bearing", "distance")
	if err != nil {
		badRequest(w, r, err)
		return
	}

	c, err := latlon.CalculatorFor(r.URL.Query().Get("method"))
	if err != nil {
		badRequest(w, r, err)
		return
	}

	from := latlon.LatLon{Lat: v[0], Lon: v[1]}
	p, err := c.Destination(from, v[2], v[3])
	if err != nil {
		badRequest(w, r, err)
		return
	}

	requestLogger(r).Debugf("Destination %s %.2f° %.3f km : %s", from, v[2], v[3], p)

	reply(w, p)
}

func (s *server) intersection(w http.ResponseWriter, r *http.Request) {
	v, err := floatVars(r, "lat1", "lon1", "bearing1", "lat2", "lon2", "bearing2")
	if err != nil {
		badRequest(w, r, err)
		return
	}

	p, ok, err := latlon.Intersection(latlon.LatLon{Lat: v[0], Lon: v[1]}, v[2], latlon.LatLon{Lat: v[3], Lon: v[4]}, v[5])
	if err != nil {
		badRequest(w, r, err)
		return
	}

	res := model.Intersection{Found: ok}
	if ok {
		res.Point = &p
	}

	reply(w, res)
}

func twoPoints(r *http.Request) (latlon.LatLon, latlon.LatLon, error) {
	v, err := floatVars(r, "lat1", "lon1", "lat2", "lon2")
	if err != nil {
		return latlon.LatLon{}, latlon.LatLon{}, err
	}
	return latlon.LatLon{Lat: v[0], Lon: v[1]}, latlon.LatLon{Lat: v[2], Lon: v[3]}, nil
}

func floatVars(r *http.Request, names ...string) ([]float64, error) {
	vars := mux.Vars(r)
	res := make([]float64, len(names))
	for i, name := range names {
		f, err := strconv.ParseFloat(vars[name], 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("invalid %s '%s'", name, vars[name])
		}
		res[i] = f
	}
	return res, nil
}

func methodName(c latlon.Calculator) string {
	switch c.(type) {
	case latlon.Cosines:
		return "cosines"
	case latlon.Rhumb:
		return "rhumb"
	}
	return "haversine"
}

func reply(w http.ResponseWriter, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Errorf("Encoding reply: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(append(b, '\n'))
}

func badRequest(w http.ResponseWriter, r *http.Request, err error) {
	e := model.Error{Error: err.Error()}
	switch {
	case latlon.IsLatitudeRange(err):
		e.Kind = "latitude"
	case latlon.IsLongitudeRange(err):
		e.Kind = "longitude"
	}

	requestLogger(r).Warnf("Bad request %s : %v", r.URL.Path, err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(e)
}

func requestLogger(r *http.Request) *log.Entry {
	fields := log.Fields{}
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			fields["action"] = tpl
		}
	}
	if ip, err := getIp(r); err == nil {
		fields["IP"] = ip
	}
	return log.WithFields(fields)
}

func getIp(r *http.Request) (string, error) {
	//Get IP from the X-REAL-IP header
	ip := r.Header.Get("X-REAL-IP")
	netIP := net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}

	//Get IP from X-FORWARDED-FOR header
	ips := r.Header.Get("X-FORWARDED-FOR")
	splitIps := strings.Split(ips, ",")
	for _, ip := range splitIps {
		ip = strings.TrimSpace(ip)
		netIP := net.ParseIP(ip)
		if netIP != nil {
			return ip, nil
		}
	}

	//Get IP from RemoteAddr
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", err
	}
	netIP = net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}
	return "", fmt.Errorf("No valid ip found")
}
