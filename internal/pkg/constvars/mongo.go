package constvars

const (
	MongoCollectionUsers         = "users"
	MongoCollectionDoctors       = "doctors"
	MongoCollectionAppointments  = "appointments"
	MongoCollectionTransactions  = "transactions"
	MongoCollectionPrescriptions = "prescriptions"
)

const (
	MongoIndexTransactionSessionID      = "uniq_transactions_session_id"
	MongoIndexPrescriptionAppointmentID = "uniq_prescriptions_appointment_id"
)
