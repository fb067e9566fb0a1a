package handler

// User-facing response messages. The Indonesian strings are part of the wire
// contract with the existing mobile clients; the upload endpoint kept English
// messages and does so here too.
const (
	msgIncompleteData     = "Data tidak lengkap"
	msgInvalidType        = "Tipe transaksi tidak valid"
	msgInvalidAmount      = "Jumlah transaksi tidak valid"
	msgUserNotFound       = "User tidak ditemukan"
	msgWrongPassword      = "Password salah"
	msgServerError        = "Terjadi kesalahan pada server"
	msgTransactionAdded   = "Transaksi baru berhasil ditambahkan"
	msgTransactionUpdated = "Transaksi berhasil diperbarui"
	msgTransactionDeleted = "Transaksi berhasil dihapus"
	msgTransactionMissing = "Transaksi tidak ditemukan atau bukan milik Anda"
	msgAddFailed          = "Gagal menambahkan transaksi"
	msgUpdateFailed       = "Gagal memperbarui transaksi"
	msgDeleteFailed       = "Gagal menghapus transaksi"
	msgImageDeleted       = "Foto profil berhasil dihapus"
	msgImageDeleteFailed  = "Gagal menghapus foto profil"

	msgInvalidUserID    = "Invalid user ID"
	msgNoFileUploaded   = "No file uploaded or upload error"
	msgBadExtension     = "Invalid file extension. Allowed: jpg, jpeg, png, gif"
	msgMIMEMismatch     = "MIME type mismatch. Expected image file"
	msgFileTooLarge     = "File size too large. Maximum 5MB allowed"
	msgUploadFailed     = "Failed to upload file"
	msgImageSaved       = "Profile image uploaded successfully"
	msgDBUpdateFailed   = "Failed to update database"
	msgFileParamMissing = "File parameter is missing"
)
